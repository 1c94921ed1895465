package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/endevo/legacyready/ent"
	"github.com/endevo/legacyready/ent/assessmentevent"
	"github.com/endevo/legacyready/ent/progressevent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the database handle and hands out repositories over it.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// sqlitePragmas are per connection, so the pool is pinned to one.
var sqlitePragmas = []string{
	"journal_mode = WAL",
	"busy_timeout = 5000",
	"foreign_keys = ON",
	"synchronous = NORMAL",
}

// Open connects to the SQLite database at dsn and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s, err := initStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func initStore(db *sql.DB) (*Store, error) {
	for _, p := range sqlitePragmas {
		if _, err := db.Exec("PRAGMA " + p); err != nil {
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	seq, err := newSequenceCounter(db)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the raw handle for the sequence table and tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) ResultRepo() ResultRepo {
	return &resultRepo{client: s.client, seq: s.seq}
}

func (s *Store) ProgressRepo() ProgressRepo {
	return &progressRepo{client: s.client, seq: s.seq}
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// ResetRespondent deletes every assessment result and progress event of a
// respondent. It returns the number of rows removed.
func (s *Store) ResetRespondent(ctx context.Context, respondentID string) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin reset: %w", err)
	}
	results, err := tx.AssessmentEvent.Delete().
		Where(assessmentevent.RespondentID(respondentID)).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete results: %w", err)
	}
	events, err := tx.ProgressEvent.Delete().
		Where(progressevent.RespondentID(respondentID)).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("delete progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reset: %w", err)
	}
	return results + events, nil
}

// DefaultDBPath returns $LEGACYREADY_DB when set, otherwise legacyready.db
// under the XDG data directory, creating the parent directory either way.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEGACYREADY_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "legacyready", "legacyready.db")
	return p, EnsureDir(p)
}

// EnsureDir creates path's parent directory.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
