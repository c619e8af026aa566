// Package database handles the MySQL connection used for audit run history.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection with sane pool settings and a
// bounded initial ping. The connection is optional: when it fails, the
// application still serves audits, just without persisted run history.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", err)
//	}
package database
