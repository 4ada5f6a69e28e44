// Package config provides configuration management for the service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: port (PORT or SERVER_PORT, default 5000), body limit, swagger toggle
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags of each subsection.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Address())
package config
