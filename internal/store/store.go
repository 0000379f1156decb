// Package store persists sampled keyframe tables in SQLite.
//
// A table is saved under a unique name together with the (duration, step)
// it was sampled with. Each keyframe row keeps its transform as a JSON
// array of 16 column-major values plus the rendered matrix3d() string.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/wangfutao/animate.js/keyframe"
	"github.com/wangfutao/animate.js/matrix"
	"github.com/wangfutao/animate.js/transform"
)

//go:embed schema.sql
var schema string

var (
	// ErrNotFound indicates no table with the requested name.
	ErrNotFound = errors.New("store: table not found")

	// ErrExists indicates a save under a name already taken.
	ErrExists = errors.New("store: table already exists")

	// ErrInvalidTable indicates a table without a name or keyframes.
	ErrInvalidTable = errors.New("store: invalid table")
)

// Table is a named keyframe table and its sampling parameters.
type Table struct {
	Name      string
	Duration  float64
	Step      float64
	Keyframes *keyframe.Keyframes
	CreatedAt time.Time
}

// Summary describes a stored table without its rows.
type Summary struct {
	Name      string
	Duration  float64
	Step      float64
	Frames    int
	CreatedAt time.Time
}

// Store is a SQLite-backed table store.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save writes t in one transaction. CreatedAt is set by the store.
func (s *Store) Save(ctx context.Context, t Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidTable)
	}
	if t.Keyframes == nil || t.Keyframes.IsEmpty() {
		return fmt.Errorf("table %q has no keyframes: %w", name, ErrInvalidTable)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO animations (name, duration, step, created_at) VALUES (?, ?, ?, ?)`,
		name, t.Duration, t.Step, toMillis(s.now()),
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("save %q: %w", name, ErrExists)
		}
		return fmt.Errorf("insert animation: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO keyframes (animation, seq, progress, matrix, css) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare keyframes: %w", err)
	}
	defer stmt.Close()
	for i, f := range t.Keyframes.All() {
		cm := f.Transform.ColumnMajor()
		raw, err := json.Marshal(cm[:])
		if err != nil {
			return fmt.Errorf("encode keyframe %d: %w", i, err)
		}
		if _, err = stmt.ExecContext(ctx, name, i, f.Progress, string(raw), f.Transform.CSS()); err != nil {
			return fmt.Errorf("insert keyframe %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load reads the table named name with keyframes in saved order.
func (s *Store) Load(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := &Table{Name: name}
	var created int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT duration, step, created_at FROM animations WHERE name = ?`, name,
	).Scan(&t.Duration, &t.Step, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	t.CreatedAt = fromMillis(created)

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT progress, matrix FROM keyframes WHERE animation = ? ORDER BY seq`, name)
	if err != nil {
		return nil, fmt.Errorf("load %q keyframes: %w", name, err)
	}
	defer rows.Close()

	t.Keyframes = keyframe.New()
	for rows.Next() {
		var (
			progress float64
			raw      string
		)
		if err := rows.Scan(&progress, &raw); err != nil {
			return nil, fmt.Errorf("scan keyframe: %w", err)
		}
		m, err := decodeTransform(raw)
		if err != nil {
			return nil, fmt.Errorf("load %q at %v: %w", name, progress, err)
		}
		t.Keyframes.Add(keyframe.Keyframe{Progress: progress, Transform: m})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keyframes: %w", err)
	}
	return t, nil
}

// List returns every stored table, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT a.name, a.duration, a.step, a.created_at, COUNT(k.seq)
FROM animations a LEFT JOIN keyframes k ON k.animation = a.name
GROUP BY a.name
ORDER BY a.created_at DESC, a.name`)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			created int64
		)
		if err := rows.Scan(&sum.Name, &sum.Duration, &sum.Step, &created, &sum.Frames); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		sum.CreatedAt = fromMillis(created)
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes the table named name and its keyframes.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM animations WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	return nil
}

func decodeTransform(raw string) (*transform.Transform3D, error) {
	var cm []float64
	if err := json.Unmarshal([]byte(raw), &cm); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	if len(cm) != transform.Size*transform.Size {
		return nil, fmt.Errorf("decode matrix: %d values: %w", len(cm), transform.ErrNotTransform)
	}
	rows := make([][]float64, transform.Size)
	for i := range rows {
		rows[i] = make([]float64, transform.Size)
		for j := range rows[i] {
			rows[i][j] = cm[j*transform.Size+i]
		}
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	return transform.FromMatrix(d)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
