package repositories

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS invoices (
		id TEXT PRIMARY KEY,
		date DATE,
		total DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
		invoice_id TEXT,
		product TEXT,
		quantity INT,
		price DOUBLE
	)`,
}

// OpenDB opens the embedded sqlite database at dsn and makes sure both
// invoice tables exist. The DDL is create-if-absent, so calling it against
// an already initialized database is a no-op.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	for _, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return db, nil
}
