// Package archive keeps a local history of refresh runs and the articles
// they produced, the diagnostics channel for "why is this pair stale" and
// "why is this article untrusted" questions.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/newsgrid/pkg/domain"
)

var schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at   TIMESTAMP NOT NULL,
	window_index INTEGER NOT NULL,
	items        INTEGER NOT NULL,
	failures     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS articles (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id   INTEGER NOT NULL REFERENCES runs(id),
	region   TEXT NOT NULL,
	category TEXT NOT NULL,
	title    TEXT NOT NULL,
	link     TEXT NOT NULL,
	trust    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_articles_run ON articles(run_id);
CREATE INDEX IF NOT EXISTS idx_articles_pair ON articles(region, category);
`

// Archive is the sqlite-backed run history ledger
type Archive struct {
	db *sqlx.DB
}

// Run describes one completed refresh invocation
type Run struct {
	ID          int64     `db:"id"`
	StartedAt   time.Time `db:"started_at"`
	WindowIndex int       `db:"window_index"`
	Items       int       `db:"items"`
	Failures    int       `db:"failures"`
}

// Entry is one archived article reference
type Entry struct {
	RunID    int64  `db:"run_id"`
	Region   string `db:"region"`
	Category string `db:"category"`
	Title    string `db:"title"`
	Link     string `db:"link"`
	Trust    string `db:"trust"`
}

// New opens (and initializes) the archive database
func New(ctx context.Context, dsn string) (*Archive, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init archive schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the database connection
func (a *Archive) Close() error {
	return a.db.Close()
}

// RecordRun stores one run with its articles in a single transaction
func (a *Archive) RecordRun(ctx context.Context, run Run, processed map[domain.WorkItem][]domain.Article) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (started_at, window_index, items, failures) VALUES (?, ?, ?, ?)",
		run.StartedAt.UTC(), run.WindowIndex, run.Items, run.Failures)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for item, articles := range processed {
		for _, article := range articles {
			_, err := tx.NamedExecContext(ctx,
				`INSERT INTO articles (run_id, region, category, title, link, trust)
				 VALUES (:run_id, :region, :category, :title, :link, :trust)`,
				Entry{
					RunID:    runID,
					Region:   item.Region,
					Category: item.Category,
					Title:    article.Title,
					Link:     article.Link,
					Trust:    string(article.Trust),
				})
			if err != nil {
				return fmt.Errorf("insert archived article: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}
	return nil
}

// LastRun returns the most recent run record, nil when the archive is empty
func (a *Archive) LastRun(ctx context.Context) (*Run, error) {
	var run Run
	err := a.db.GetContext(ctx, &run, "SELECT * FROM runs ORDER BY id DESC LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last run: %w", err)
	}
	return &run, nil
}

// EntriesForPair returns archived articles for a (region, category) pair,
// newest first, up to limit
func (a *Archive) EntriesForPair(ctx context.Context, item domain.WorkItem, limit int) ([]Entry, error) {
	var entries []Entry
	err := a.db.SelectContext(ctx, &entries,
		"SELECT run_id, region, category, title, link, trust FROM articles WHERE region = ? AND category = ? ORDER BY id DESC LIMIT ?",
		item.Region, item.Category, limit)
	if err != nil {
		return nil, fmt.Errorf("query archived articles: %w", err)
	}
	return entries, nil
}
