package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ptanasia/potrack/internal/domain/model"
)

// Logical state keys. The whole application state is three values in a
// single key-value table, mirroring the storage contract of the original
// single-profile tool.
const (
	keyOrders         = "orders"
	keyLastSequence   = "last-sequence"
	keyCurrentSession = "current-session"
)

const dbFileName = "potrack.db"

// Store is a sqlite-backed key-value store holding the order list, the
// order-number sequence counter, and the persisted session. Read failures
// degrade to the empty state and are logged; they are never surfaced to
// callers.
type Store struct {
	conn   *sql.DB
	logger *slog.Logger
}

// New opens (or creates) the database file under dataDir and initializes
// the schema.
func New(dataDir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{conn: conn, logger: logger}
	if err := store.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}

	return store, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *Store) initSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS app_state (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )`
	if _, err := s.conn.Exec(stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	const query = `SELECT value FROM app_state WHERE key=?`
	var value string
	err := s.conn.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("read state key",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return "", false
	}
	return value, true
}

func (s *Store) set(ctx context.Context, key, value string) error {
	const query = `INSERT INTO app_state (key, value) VALUES (?, ?)
                   ON CONFLICT(key) DO UPDATE SET value=excluded.value`
	if _, err := s.conn.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("write state key %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	const query = `DELETE FROM app_state WHERE key=?`
	if _, err := s.conn.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete state key %s: %w", key, err)
	}
	return nil
}

// LoadOrders returns the persisted order list, or an empty list when the
// store is absent or the stored JSON cannot be decoded.
func (s *Store) LoadOrders(ctx context.Context) []model.Order {
	raw, ok := s.get(ctx, keyOrders)
	if !ok {
		return nil
	}

	var orders []model.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		s.logger.Error("decode stored orders", slog.String("error", err.Error()))
		return nil
	}
	return orders
}

// SaveOrders persists the full order list as a single JSON array.
func (s *Store) SaveOrders(ctx context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	encoded, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	return s.set(ctx, keyOrders, string(encoded))
}

// LastSequence returns the persisted sequence counter, or zero when absent
// or unparsable.
func (s *Store) LastSequence(ctx context.Context) int64 {
	raw, ok := s.get(ctx, keyLastSequence)
	if !ok {
		return 0
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.logger.Error("decode stored sequence", slog.String("error", err.Error()))
		return 0
	}
	return n
}

// SetLastSequence persists the sequence counter.
func (s *Store) SetLastSequence(ctx context.Context, n int64) error {
	return s.set(ctx, keyLastSequence, strconv.FormatInt(n, 10))
}

// LoadSession returns the persisted session user, or nil when no session
// is stored or the record cannot be decoded.
func (s *Store) LoadSession(ctx context.Context) *model.User {
	raw, ok := s.get(ctx, keyCurrentSession)
	if !ok {
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Error("decode stored session", slog.String("error", err.Error()))
		return nil
	}
	return &user
}

// SaveSession persists the active session user.
func (s *Store) SaveSession(ctx context.Context, user model.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.set(ctx, keyCurrentSession, string(encoded))
}

// ClearSession removes the persisted session.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.delete(ctx, keyCurrentSession)
}

// HealthCheck verifies database connectivity.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}
