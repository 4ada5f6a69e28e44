package storage

// Config describes the S3-compatible bucket that archives indicator snapshots.
// Endpoint may carry an http:// or https:// scheme; https implies UseSSL.
type Config struct {
	Enabled   bool   `mapstructure:"enabled" default:"false"`
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	Bucket    string `mapstructure:"bucket" default:"indicators"`
	Region    string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds the TLS handshake and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
