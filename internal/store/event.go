package store

import (
	"context"
	"database/sql"
	"fmt"
)

// sequenceCounter numbers events across all event tables so results and
// the progress recorded after them sort in one order. ent cannot express
// an atomic counter, hence the raw SQL; the store's single connection
// serializes callers.
type sequenceCounter struct {
	db *sql.DB
}

const createSequenceTable = `CREATE TABLE IF NOT EXISTS global_sequence (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	next_val INTEGER NOT NULL
)`

// The first call inserts the row with value 1; later calls bump it.
const nextSequence = `INSERT INTO global_sequence (id, next_val) VALUES (1, 1)
	ON CONFLICT (id) DO UPDATE SET next_val = next_val + 1
	RETURNING next_val`

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	if _, err := db.Exec(createSequenceTable); err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number, starting at 1.
func (c *sequenceCounter) Next(ctx context.Context) (int64, error) {
	var n int64
	if err := c.db.QueryRowContext(ctx, nextSequence).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
