package server

import "time"

const (
	// DefaultPort is used when neither PORT nor SERVER_PORT is set.
	DefaultPort = "5000"
	// DatabasePrefix is where the database router is mounted.
	DatabasePrefix = "/database"
	// IdleTimeout is how long an idle keep-alive connection stays open.
	IdleTimeout = 1_200_000 * time.Millisecond
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen. It is passed to the
	// listener unvalidated.
	Port string `mapstructure:"port" default:"5000"`
	// BodyLimit is the maximum accepted request body size in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"102400"`
	// Swagger exposes the API documentation under /swagger.
	Swagger bool `mapstructure:"swagger" default:"false"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	port := c.Port
	if port == "" {
		port = DefaultPort
	}
	return ":" + port
}
