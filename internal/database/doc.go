// Package database provides the data access layer for the lending journal.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── journal/         # Lending journal entries
//
// The library state itself lives in memory (see internal/lending). The
// database only keeps the journal, and defaults to an in-memory SQLite
// database so nothing survives a restart unless DATABASE_PATH points at a file.
//
// # Usage
//
//	db, err := database.NewDatabase(database.InMemoryPath)
//	repo := journal.NewRepository(db.DB)
package database
