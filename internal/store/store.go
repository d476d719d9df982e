// Package store persists connectivity runs and their result tables in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/johnpfay/PatchConnect/connectivity"
	"github.com/johnpfay/PatchConnect/core"
	"github.com/johnpfay/PatchConnect/sweep"
)

//go:embed schema.sql
var schemaSQL string

//go:embed pragmas.sql
var pragmasSQL string

// ErrRunNotFound indicates an unknown run id.
var ErrRunNotFound = errors.New("store: run not found")

// DB wraps a SQLite connection.
type DB struct {
	conn *sql.DB
}

// Run is one recorded run.
type Run struct {
	ID         string
	CreatedAt  time.Time
	GridDigest string
	Label      string
	Params     map[string]any
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening sqlite: %w", err)
	}

	for _, pragma := range strings.Split(pragmasSQL, "\n") {
		pragma = strings.TrimSpace(pragma)
		if pragma == "" || strings.HasPrefix(pragma, "--") {
			continue
		}
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("store: applying pragma %q: %w", pragma, err)
		}
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: applying schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// CreateRun records a new run and returns its id.
func (db *DB) CreateRun(ctx context.Context, gridDigest, label string, params map[string]any) (string, error) {
	if params == nil {
		params = map[string]any{}
	}
	blob, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("store: encoding params: %w", err)
	}

	id := uuid.NewString()
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, grid_digest, label, params) VALUES (?, ?, ?, ?, ?)`,
		id, time.Now().UnixMilli(), gridDigest, label, string(blob),
	)
	if err != nil {
		return "", fmt.Errorf("store: inserting run: %w", err)
	}

	return id, nil
}

// Runs lists every run, newest first.
func (db *DB) Runs(ctx context.Context) ([]Run, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, created_at, grid_digest, label, params FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("store: querying runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r      Run
			ms     int64
			params string
		)
		if err := rows.Scan(&r.ID, &ms, &r.GridDigest, &r.Label, &params); err != nil {
			return nil, fmt.Errorf("store: scanning run: %w", err)
		}
		r.CreatedAt = time.UnixMilli(ms)
		if err := json.Unmarshal([]byte(params), &r.Params); err != nil {
			return nil, fmt.Errorf("store: decoding params of run %s: %w", r.ID, err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// SaveEdges stores the edge list of a run.
func (db *DB) SaveEdges(ctx context.Context, runID string, edges []core.Edge) error {
	return db.insertAll(ctx, runID, "edges",
		`INSERT INTO edges (run_id, from_id, to_id, cost) VALUES (?, ?, ?, ?)`,
		len(edges), func(i int) []any {
			e := edges[i]
			return []any{e.From, e.To, e.Cost}
		})
}

// SaveThresholds stores a threshold sequence.
func (db *DB) SaveThresholds(ctx context.Context, runID string, snaps []sweep.Snapshot) error {
	return db.insertAll(ctx, runID, "thresholds",
		`INSERT INTO thresholds (run_id, threshold, components, diameter) VALUES (?, ?, ?, ?)`,
		len(snaps), func(i int) []any {
			s := snaps[i]
			return []any{s.Threshold, s.Components, s.Diameter}
		})
}

// SaveSensitivity stores the node-removal table.
func (db *DB) SaveSensitivity(ctx context.Context, runID string, rows []sweep.NodeSensitivity) error {
	return db.insertAll(ctx, runID, "sensitivity",
		`INSERT INTO sensitivity (run_id, node, cut, diameter_delta) VALUES (?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			cut := 0
			if r.Cut {
				cut = 1
			}
			return []any{r.ID, cut, r.DiameterDelta}
		})
}

// SaveAttributes stores the patch attribute table.
func (db *DB) SaveAttributes(ctx context.Context, runID string, rows []connectivity.PatchAttributes) error {
	return db.insertAll(ctx, runID, "attributes",
		`INSERT INTO attributes (run_id, patch, area, connected_area, idw_area, degree, betweenness, closeness, degree_centrality)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			a := rows[i]
			return []any{a.ID, a.Area, a.ConnectedArea, a.IDWArea, a.Degree, a.Betweenness, a.Closeness, a.DegreeCentrality}
		})
}

// LoadEdges returns the edges of a run sorted by (From, To).
func (db *DB) LoadEdges(ctx context.Context, runID string) ([]core.Edge, error) {
	if err := db.checkRun(ctx, runID); err != nil {
		return nil, err
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT from_id, to_id, cost FROM edges WHERE run_id = ? ORDER BY from_id, to_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: querying edges: %w", err)
	}
	defer rows.Close()

	var out []core.Edge
	for rows.Next() {
		var e core.Edge
		if err := rows.Scan(&e.From, &e.To, &e.Cost); err != nil {
			return nil, fmt.Errorf("store: scanning edge: %w", err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// insertAll runs one prepared INSERT per row inside a transaction. args(i)
// supplies every column after run_id.
func (db *DB) insertAll(ctx context.Context, runID, table, query string, n int, args func(i int) []any) error {
	if err := db.checkRun(ctx, runID); err != nil {
		return err
	}
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("store: preparing %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, append([]any{runID}, args(i)...)...); err != nil {
			return fmt.Errorf("store: inserting %s row %d: %w", table, i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: committing %s: %w", table, err)
	}

	return nil
}

func (db *DB) checkRun(ctx context.Context, runID string) error {
	var one int
	err := db.conn.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return fmt.Errorf("store: looking up run: %w", err)
	}

	return nil
}
