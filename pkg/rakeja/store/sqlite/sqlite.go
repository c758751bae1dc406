package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/rakeja/pkg/rakeja/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS stopword_lists (
	source TEXT PRIMARY KEY,
	fetched_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS stopwords (
	source TEXT NOT NULL,
	position INTEGER NOT NULL,
	word TEXT NOT NULL,
	PRIMARY KEY(source, position),
	FOREIGN KEY(source) REFERENCES stopword_lists(source) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	label TEXT,
	metric TEXT
);

CREATE TABLE IF NOT EXISTS run_phrases (
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	phrase TEXT NOT NULL,
	score REAL NOT NULL,
	PRIMARY KEY(run_id, position),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// GetStopwords returns the cached list for source
func (s *sqliteStore) GetStopwords(ctx context.Context, source string) (store.StopwordList, bool, error) {
	var fetchedAt string
	err := s.db.QueryRowContext(ctx, `SELECT fetched_at FROM stopword_lists WHERE source=?`, source).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return store.StopwordList{}, false, nil
	}
	if err != nil {
		return store.StopwordList{}, false, err
	}

	words, err := s.loadStringColumn(ctx, `SELECT word FROM stopwords WHERE source=? ORDER BY position`, source)
	if err != nil {
		return store.StopwordList{}, false, err
	}

	ts, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return store.StopwordList{}, false, err
	}

	return store.StopwordList{Source: source, Words: words, FetchedAt: ts}, true, nil
}

// PutStopwords replaces the list for source in a single transaction.
func (s *sqliteStore) PutStopwords(ctx context.Context, list store.StopwordList) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stopwords WHERE source=?`, list.Source); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO stopword_lists (source, fetched_at) VALUES (?, ?)
ON CONFLICT(source) DO UPDATE SET fetched_at=excluded.fetched_at;
`, list.Source, list.FetchedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	if len(list.Words) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO stopwords (source, position, word) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, w := range list.Words {
			if _, err := stmt.ExecContext(ctx, list.Source, i, w); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// SaveRun inserts or replaces a run and its ranked phrases
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO runs (id, created_at, label, metric) VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	created_at=excluded.created_at,
	label=excluded.label,
	metric=excluded.metric;
`, r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.Label, r.Metric); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM run_phrases WHERE run_id=?`, r.ID); err != nil {
		return err
	}

	if len(r.Phrases) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO run_phrases (run_id, position, phrase, score) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, p := range r.Phrases {
			if _, err := stmt.ExecContext(ctx, r.ID, i, p.Phrase, p.Score); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// GetRun loads a run by ID
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	r, err := s.loadRun(ctx, id)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// RecentRuns returns the newest runs; ULIDs sort by creation time.
func (s *sqliteStore) RecentRuns(ctx context.Context, k int) ([]store.Run, error) {
	if k <= 0 {
		k = 10
	}

	ids, err := s.loadStringColumn(ctx, `SELECT id FROM runs ORDER BY id DESC LIMIT ?`, k)
	if err != nil {
		return nil, err
	}

	runs := make([]store.Run, 0, len(ids))
	for _, id := range ids {
		r, err := s.loadRun(ctx, id)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

func (s *sqliteStore) loadRun(ctx context.Context, id string) (store.Run, error) {
	r := store.Run{ID: id}
	var createdAt string
	var label, metric sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT created_at, label, metric FROM runs WHERE id=?`, id).
		Scan(&createdAt, &label, &metric)
	if err != nil {
		return store.Run{}, err
	}
	r.Label = label.String
	r.Metric = metric.String
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return store.Run{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT phrase, score FROM run_phrases WHERE run_id=? ORDER BY position`, id)
	if err != nil {
		return store.Run{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var p store.ScoredPhrase
		if err := rows.Scan(&p.Phrase, &p.Score); err != nil {
			return store.Run{}, err
		}
		r.Phrases = append(r.Phrases, p)
	}
	return r, rows.Err()
}

func (s *sqliteStore) loadStringColumn(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var val string
		if err := rows.Scan(&val); err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, rows.Err()
}
