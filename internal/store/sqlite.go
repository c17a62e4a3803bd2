package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite stores every collection in one records table whose primary key is
// (collection, partition, sort). Partition queries range over the index, so
// reading one user's entries never scans other users' data.
type SQLite struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS records (
	"collection" TEXT NOT NULL,
	"partition"  TEXT NOT NULL,
	"sort"       TEXT NOT NULL DEFAULT '',
	"doc"        TEXT NOT NULL,
	PRIMARY KEY ("collection", "partition", "sort")
);`

// OpenSQLite opens (or creates) the database file and bootstraps the schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Put(collection string, key Key, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO records("collection", "partition", "sort", "doc")
		VALUES(?, ?, ?, ?)
		ON CONFLICT("collection", "partition", "sort")
		DO UPDATE SET "doc" = excluded."doc"`,
		collection, key.Partition, key.Sort, string(data))
	return err
}

func (s *SQLite) Get(collection string, key Key, out any) error {
	var data string
	row := s.db.QueryRow(
		`SELECT "doc" FROM records WHERE "collection" = ? AND "partition" = ? AND "sort" = ?`,
		collection, key.Partition, key.Sort)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(data), out)
}

func (s *SQLite) Delete(collection string, key Key) error {
	_, err := s.db.Exec(
		`DELETE FROM records WHERE "collection" = ? AND "partition" = ? AND "sort" = ?`,
		collection, key.Partition, key.Sort)
	return err
}

func (s *SQLite) Query(collection, partition string) ([]json.RawMessage, error) {
	rows, err := s.db.Query(
		`SELECT "doc" FROM records WHERE "collection" = ? AND "partition" = ? ORDER BY "sort"`,
		collection, partition)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		docs = append(docs, json.RawMessage(data))
	}
	return docs, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
