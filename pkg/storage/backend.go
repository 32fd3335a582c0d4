package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"

	"phonebench/pkg/common"

	_ "modernc.org/sqlite"
)

// Source supplies the two input lists.
type Source interface {
	LoadDirectory() ([]common.Record, error)
	LoadQueries() ([]string, error)
	Close()
}

// SQLiteSource keeps the directory and the query list in one SQLite file.
type SQLiteSource struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenSQLite opens an existing database; create is needed for Import targets.
func OpenSQLite(path string, create bool) (*SQLiteSource, error) {
	if !create {
		if _, err := os.Stat(path); err != nil {
			return nil, common.NewNotFoundError(path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS directory (
		id INTEGER PRIMARY KEY,
		phone TEXT NOT NULL,
		name TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS queries (
		id INTEGER PRIMARY KEY,
		query TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		log.Printf("[Storage] Warning: Failed to set PRAGMA: %v", err)
	}

	return &SQLiteSource{db: db}, nil
}

// Import replaces both lists in a single transaction, keeping their order.
func (s *SQLiteSource) Import(records []common.Record, queries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM directory"); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM queries"); err != nil {
		tx.Rollback()
		return err
	}

	dirStmt, err := tx.Prepare("INSERT INTO directory (id, phone, name) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer dirStmt.Close()

	for i, rec := range records {
		if _, err := dirStmt.Exec(i, rec.Phone, rec.Name); err != nil {
			tx.Rollback()
			return err
		}
	}

	qStmt, err := tx.Prepare("INSERT INTO queries (id, query) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer qStmt.Close()

	for i, q := range queries {
		if _, err := qStmt.Exec(i, q); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteSource) LoadDirectory() ([]common.Record, error) {
	rows, err := s.db.Query("SELECT phone, name FROM directory ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []common.Record
	for rows.Next() {
		var rec common.Record
		if err := rows.Scan(&rec.Phone, &rec.Name); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteSource) LoadQueries() ([]string, error) {
	rows, err := s.db.Query("SELECT query FROM queries ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

func (s *SQLiteSource) Close() {
	s.db.Close()
}
