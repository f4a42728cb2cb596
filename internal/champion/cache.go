package champion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Cache persists the champion table in a local SQLite file so a restart does
// not need the network.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS ddragon_meta (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  version TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS champions (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  search_key TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS champions_search_key ON champions (search_key);
`

// OpenCache opens (or creates) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("cache path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open champion cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping champion cache: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create champion cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Version returns the cached data version, or "" when the cache is empty.
func (c *Cache) Version(ctx context.Context) (string, error) {
	var version string
	err := c.db.QueryRowContext(ctx, `SELECT version FROM ddragon_meta WHERE id = 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read cache version: %w", err)
	}
	return version, nil
}

// Records returns the cached table if it matches version, else nil.
func (c *Cache) Records(ctx context.Context, version string) ([]Record, error) {
	cached, err := c.Version(ctx)
	if err != nil || cached != version {
		return nil, err
	}
	return c.readRecords(ctx)
}

// LatestRecords returns whatever table is cached regardless of version.
func (c *Cache) LatestRecords(ctx context.Context) ([]Record, string, error) {
	version, err := c.Version(ctx)
	if err != nil || version == "" {
		return nil, "", err
	}
	records, err := c.readRecords(ctx)
	return records, version, err
}

func (c *Cache) readRecords(ctx context.Context) ([]Record, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, name, slug, search_key FROM champions`)
	if err != nil {
		return nil, fmt.Errorf("read cached champions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Slug, &rec.SearchKey); err != nil {
			return nil, fmt.Errorf("scan cached champion: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Store replaces the cached table in one transaction.
func (c *Cache) Store(ctx context.Context, version string, records []Record) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM champions`); err != nil {
		return fmt.Errorf("clear cached champions: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO champions (id, name, slug, search_key) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cache insert: %w", err)
	}
	defer stmt.Close()
	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Name, rec.Slug, rec.SearchKey); err != nil {
			return fmt.Errorf("insert cached champion %d: %w", rec.ID, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ddragon_meta (id, version) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET version = excluded.version`, version); err != nil {
		return fmt.Errorf("write cache version: %w", err)
	}
	return tx.Commit()
}
