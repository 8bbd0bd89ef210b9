package sitedata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/eringen/sitehead"
)

// Keys of the site_metadata table.
const (
	keyTitle       = "title"
	keyDescription = "description"
	keyTwitter     = "social.twitter"
)

// storePragmas are applied by the driver to every pooled connection. WAL
// lets the preview server read while the CLI writes; the busy timeout makes
// writers wait instead of failing with SQLITE_BUSY.
const storePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

// Store keeps site metadata in a SQLite key/value table so it can be edited
// without touching the site config.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sitedata: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?"+storePragmas)
	if err != nil {
		return nil, fmt.Errorf("sitedata: open store: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sitedata: ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS site_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// SiteMetadata implements Source. It returns nil when nothing has been saved.
func (s *Store) SiteMetadata(ctx context.Context) (*sitehead.SiteMetadata, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM site_metadata`)
	if err != nil {
		return nil, fmt.Errorf("sitedata: query site metadata: %w", err)
	}
	defer rows.Close()

	var md sitehead.SiteMetadata
	found := false
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("sitedata: scan site metadata: %w", err)
		}
		switch key {
		case keyTitle:
			md.Title = value
		case keyDescription:
			md.Description = value
		case keyTwitter:
			md.Social.Twitter = value
		default:
			continue
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sitedata: query site metadata: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &md, nil
}

// Save replaces the stored site metadata.
func (s *Store) Save(ctx context.Context, md sitehead.SiteMetadata) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sitedata: begin save: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	values := [][2]string{
		{keyTitle, md.Title},
		{keyDescription, md.Description},
		{keyTwitter, md.Social.Twitter},
	}
	for _, kv := range values {
		if _, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO site_metadata (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			return fmt.Errorf("sitedata: save %s: %w", kv[0], err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sitedata: commit save: %w", err)
	}
	return nil
}

// Clear removes all stored site metadata.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM site_metadata`); err != nil {
		return fmt.Errorf("sitedata: clear site metadata: %w", err)
	}
	return nil
}
