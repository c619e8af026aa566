// Package config provides configuration management for the Device Auditor.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for run history
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Sources: snapshot object names and cache TTL
//   - Audit: report sink, retention, and progress pacing
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
