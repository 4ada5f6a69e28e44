// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, tunes the pool and pings the server.
// The service treats the database as optional: a failed connection is logged
// and the /database routes answer 503.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite) with lower-cased names and types.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	columns, err := database.GetTableColumns(db, "quotations")
package database
