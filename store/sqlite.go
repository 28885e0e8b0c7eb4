// Package store persists curve sets in an SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/sartorproj/gocurve/curve"
	"github.com/sgostarter/i/l"

	// SQLite driver using pure Go implementation
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound = errors.New("curve not found")
	ErrClosed   = errors.New("store is closed")
)

// Config configures the SQLite curve store.
type Config struct {
	// Path to the SQLite database file
	Path string

	// BusyTimeout is the timeout for acquiring locks in milliseconds
	BusyTimeout int

	// JournalMode sets the SQLite journal mode (WAL, DELETE, ...)
	JournalMode string
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Path:        "curves.db",
		BusyTimeout: 5000,
		JournalMode: "WAL",
	}
}

// Store keeps curves with their set order.
type Store struct {
	db     *sql.DB
	logger l.Wrapper

	mu     sync.RWMutex
	closed bool
}

// Open opens or creates the database at cfg.Path.
func Open(ctx context.Context, cfg Config, logger l.Wrapper) (*Store, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "sqliteStore"))

	def := DefaultConfig()
	if cfg.Path == "" {
		cfg.Path = def.Path
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = def.BusyTimeout
	}
	if cfg.JournalMode == "" {
		cfg.JournalMode = def.JournalMode
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(%s)",
		cfg.Path, cfg.BusyTimeout, cfg.JournalMode)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	s := &Store{
		db:     db,
		logger: logger,
	}

	if err := s.initSchema(ctx); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS curves (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS curve_values (
			curve_id TEXT NOT NULL REFERENCES curves(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			value REAL NOT NULL,
			PRIMARY KEY (curve_id, idx)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_curves_position ON curves(position)`,
	}

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	return s.db.Close()
}

// Save stores every curve of set, replacing curves with the same id. New
// curves are placed after the existing ones, in set order.
func (s *Store) Save(ctx context.Context, set curve.Set) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var next int
	if err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM curves`).Scan(&next); err != nil {
		return fmt.Errorf("failed to read positions: %w", err)
	}

	for _, c := range set {
		var position int

		err = tx.QueryRowContext(ctx, `SELECT position FROM curves WHERE id = ?`, c.ID()).Scan(&position)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			position = next
			next++

			if _, err = tx.ExecContext(ctx, `INSERT INTO curves (id, position) VALUES (?, ?)`, c.ID(), position); err != nil {
				return fmt.Errorf("failed to insert curve %s: %w", c.ID(), err)
			}
		case err != nil:
			return fmt.Errorf("failed to look up curve %s: %w", c.ID(), err)
		default:
			if _, err = tx.ExecContext(ctx, `DELETE FROM curve_values WHERE curve_id = ?`, c.ID()); err != nil {
				return fmt.Errorf("failed to clear curve %s: %w", c.ID(), err)
			}
		}

		for idx, v := range c.Values() {
			if _, err = tx.ExecContext(ctx, `INSERT INTO curve_values (curve_id, idx, value) VALUES (?, ?, ?)`,
				c.ID(), idx, v); err != nil {
				return fmt.Errorf("failed to insert values of %s: %w", c.ID(), err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.logger.WithFields(l.IntField("curves", len(set))).Debug("saved")

	return nil
}

// IDs returns the stored curve ids in set order.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM curves ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list curves: %w", err)
	}
	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Load returns every stored curve in set order.
func (s *Store) Load(ctx context.Context) (curve.Set, error) {
	ids, err := s.IDs(ctx)
	if err != nil {
		return nil, err
	}

	set := make(curve.Set, 0, len(ids))

	for _, id := range ids {
		c, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		set = append(set, c)
	}

	return set, nil
}

// Get returns one curve by id.
func (s *Store) Get(ctx context.Context, id string) (*curve.Curve, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	var exists int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM curves WHERE id = ?`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to look up curve %s: %w", id, err)
	}

	if exists == 0 {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT value FROM curve_values WHERE curve_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve %s: %w", id, err)
	}
	defer rows.Close()

	var values []float64

	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return curve.New(id, values), nil
}

// Delete removes a curve and its values.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM curve_values WHERE curve_id = ?`, id); err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("failed to delete values of %s: %w", id, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM curves WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("failed to delete curve %s: %w", id, err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		_ = tx.Rollback()

		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	return tx.Commit()
}
