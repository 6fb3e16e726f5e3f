// Copyright © 2025 Texelkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/logbook/store.go
// Summary: SQLite persistence for logbook entries.

package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	body       TEXT NOT NULL
);`

// Entry is one saved note.
type Entry struct {
	ID      int64
	Created time.Time
	Body    string
}

// Store persists entries in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Add saves a new entry and returns it with its assigned ID.
func (s *Store) Add(body string) (Entry, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(
		"INSERT INTO entries (created_at, body) VALUES (?, ?)",
		now.Format(time.RFC3339), body,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Created: now, Body: body}, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, created_at, body FROM entries ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &created, &e.Body); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			e.Created = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
