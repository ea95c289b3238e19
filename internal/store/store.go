// Package store is a small SQLite-backed cache for artist-image lookups, so
// repeated runs don't hit the catalog API for the same artists. Listening
// data itself is never persisted; exports are re-read on every run.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createTables = `
CREATE TABLE IF NOT EXISTS ArtistImage (
	artist TEXT NOT NULL PRIMARY KEY,
	url TEXT NOT NULL,
	fetched INTEGER NOT NULL
);
`

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(createTables); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// GetArtistImage returns the cached URL for the artist. A cached empty URL
// is a valid entry: it remembers that the catalog had no image.
func (s *Store) GetArtistImage(artist string) (url string, ok bool, err error) {
	row := s.db.QueryRow("SELECT url FROM ArtistImage WHERE artist = ?", artist)
	err = row.Scan(&url)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading artist image: %w", err)
	}
	return url, true, nil
}

func (s *Store) SetArtistImage(artist, url string) error {
	_, err := s.db.Exec(
		"INSERT INTO ArtistImage (artist, url, fetched) VALUES (?, ?, ?) ON CONFLICT(artist) DO UPDATE SET url = excluded.url, fetched = excluded.fetched",
		artist, url, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("writing artist image: %w", err)
	}
	return nil
}
