// Package history keeps a small sqlite log of fetch outcomes. It records
// what was asked for and how it went, never the articles themselves.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type Entry struct {
	ID           int64
	FetchedAt    time.Time
	Endpoint     string
	Country      string
	Mode         string
	Status       string // "ok" or "error"
	Code         string
	ArticleCount int
	Error        string
}

func (e Entry) OK() bool {
	return e.Status == "ok"
}

type Log struct {
	db *sql.DB
}

func Open(dbPath string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := &Log{db: db}
	if err := l.init(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *Log) init() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS fetches (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			fetched_at    INTEGER NOT NULL,
			endpoint      TEXT NOT NULL,
			country       TEXT NOT NULL,
			mode          TEXT NOT NULL DEFAULT 'blocking',
			status        TEXT NOT NULL,
			code          TEXT NOT NULL DEFAULT '',
			article_count INTEGER NOT NULL DEFAULT 0,
			error         TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_fetches_fetched_at ON fetches(fetched_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (l *Log) Close() error {
	return l.db.Close()
}

// Record appends an entry. A zero FetchedAt is stamped with the current time.
func (l *Log) Record(e Entry) error {
	if e.FetchedAt.IsZero() {
		e.FetchedAt = time.Now()
	}
	_, err := l.db.Exec(`
		INSERT INTO fetches (fetched_at, endpoint, country, mode, status, code, article_count, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.FetchedAt.UnixNano(), e.Endpoint, e.Country, e.Mode, e.Status, e.Code, e.ArticleCount, e.Error)
	if err != nil {
		return fmt.Errorf("recording fetch: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.Query(`
		SELECT id, fetched_at, endpoint, country, mode, status, code, article_count, error
		FROM fetches ORDER BY fetched_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts int64
		)
		if err := rows.Scan(&e.ID, &ts, &e.Endpoint, &e.Country, &e.Mode, &e.Status, &e.Code, &e.ArticleCount, &e.Error); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.FetchedAt = time.Unix(0, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes entries older than retention and returns how many went.
func (l *Log) Prune(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).UnixNano()
	res, err := l.db.Exec(`DELETE FROM fetches WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		// Reclaim space; failure here only costs disk.
		l.db.Exec("VACUUM")
	}
	return n, nil
}

// Stats reports the number of entries and the size of the file at dbPath.
func (l *Log) Stats(dbPath string) (count int, size int64, err error) {
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM fetches`).Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting entries: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("stat %s: %w", dbPath, err)
	}
	return count, info.Size(), nil
}
