// Package store is the sqlite article archive. Every successfully
// aggregated batch is recorded here so history survives cache expiry
// and restarts; the stats and prune commands operate on it. The archive
// only observes the pipeline: requests never depend on it.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gideongeny/dailynews/internal/news"
)

// Store wraps the archive database. Reads and writes use separate
// connections; sqlite allows one writer at a time.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

// Open creates or opens the archive at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			id           TEXT PRIMARY KEY,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			content      TEXT NOT NULL DEFAULT '',
			url          TEXT NOT NULL,
			image        TEXT NOT NULL DEFAULT '',
			published_at TEXT NOT NULL,
			source       TEXT NOT NULL,
			category     TEXT NOT NULL DEFAULT 'general',
			author       TEXT NOT NULL DEFAULT '',
			country      TEXT NOT NULL DEFAULT '',
			fetched_at   DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at DESC);
		CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category);
		CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

// Close releases both connections.
func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// UpsertArticles inserts or refreshes a batch. The deterministic ids
// make this idempotent across repeated fetches of the same stories.
func (s *Store) UpsertArticles(articles []news.Article) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO articles (id, title, description, content, url, image, published_at, source, category, author, country, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			content = excluded.content,
			image = excluded.image,
			fetched_at = excluded.fetched_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, a := range articles {
		_, err := stmt.Exec(a.ID, a.Title, a.Description, a.Content, a.URL, a.Image, a.PublishedAt, a.Source, a.Category, a.Author, a.Country, now)
		if err != nil {
			return fmt.Errorf("upserting article %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// QueryOpts filters archive reads.
type QueryOpts struct {
	Category string
	Source   string
	Limit    int
}

// GetArticles reads archived articles, most recent first.
func (s *Store) GetArticles(opts QueryOpts) ([]news.Article, error) {
	query := `SELECT id, title, description, content, url, image, published_at, source, category, author, country FROM articles`
	var (
		where []string
		args  []interface{}
	)

	if opts.Category != "" {
		where = append(where, "category = ?")
		args = append(args, opts.Category)
	}
	if opts.Source != "" {
		where = append(where, "source = ?")
		args = append(args, opts.Source)
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY published_at DESC"

	limit := opts.Limit
	if limit <= 0 {
		limit = 500
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	rows, err := s.readDB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []news.Article
	for rows.Next() {
		var a news.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Content, &a.URL, &a.Image, &a.PublishedAt, &a.Source, &a.Category, &a.Author, &a.Country); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Prune deletes articles fetched before the retention window and
// reports how many rows went away.
func (s *Store) Prune(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	res, err := s.writeDB.Exec("DELETE FROM articles WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning articles: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns the archived article count and the database file size.
func (s *Store) Stats(dbPath string) (count int64, size int64, err error) {
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting articles: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("reading db size: %w", err)
	}
	return count, info.Size(), nil
}
