// Package store persists ambient site data in sqlite: a privacy-conscious
// visitor log and the contact-message journal. The project catalog itself
// is never persisted; it lives in memory for the process lifetime.
package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	body TEXT NOT NULL,
	relayed INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Store wraps the sqlite handle. IPs are salted and hashed before they
// touch disk; the salt is per-boot, so hashes are consistent within a run
// but unlinkable across restarts.
type Store struct {
	db   *sql.DB
	salt string
	log  *zap.Logger
}

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// StoredMessage is one contact submission as persisted.
type StoredMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Relayed   bool      `json:"relayed"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats aggregates the numbers the admin dashboard shows.
type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TotalMessages    int64           `json:"total_messages"`
	RelayedMessages  int64           `json:"relayed_messages"`
	RecentVisitors   []Visit         `json:"recent_visitors"`
	RecentMessages   []StoredMessage `json:"recent_messages"`
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" in tests.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	// The modernc driver serializes writes; a single connection also keeps
	// ":memory:" databases from silently forking per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, salt: newSalt(), log: log}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func newSalt() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("store: read random salt: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// HashIP returns the salted, truncated hash recorded for an address.
// Consistent per IP within one process run.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit logs one page view with a hashed address.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// SaveMessage journals a contact submission and whether the relay
// delivered it. Returns the generated message id.
func (s *Store) SaveMessage(ctx context.Context, name, email, body string, relayed bool) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, body, relayed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, email, body, relayed, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("save message: %w", err)
	}
	return id, nil
}

// RecentMessages returns the newest contact submissions, newest first.
func (s *Store) RecentMessages(ctx context.Context, limit int) ([]StoredMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, relayed, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []StoredMessage
	for rows.Next() {
		var m StoredMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Relayed, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Stats aggregates dashboard numbers in one call.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE DATE(timestamp) = DATE('now')`, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= datetime('now', '-7 days')`, &stats.VisitorsThisWeek},
		{`SELECT COUNT(*) FROM messages`, &stats.TotalMessages},
		{`SELECT COUNT(*) FROM messages WHERE relayed = 1`, &stats.RelayedMessages},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("stats query: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT 50`)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		stats.RecentVisitors = append(stats.RecentVisitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.RecentMessages, err = s.RecentMessages(ctx, 10)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// PurgeOldVisitors deletes visit records older than maxAge and reports how
// many went away.
func (s *Store) PurgeOldVisitors(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge visitors: %w", err)
	}
	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		s.log.Info("privacy cleanup removed old visitor records",
			zap.Int64("deleted", deleted))
	}
	return deleted, nil
}
