// Package analytics keeps a privacy-conscious visit log: IP addresses are
// stored only as salted hashes, Do-Not-Track is honoured and old rows are
// purged on a schedule.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"
)

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Theme     string    `json:"theme"`
	VisitedAt time.Time `json:"visited_at"`
}

// Tracker records and summarises visits.
type Tracker struct {
	db     *sql.DB
	salt   string
	logger *slog.Logger
	now    func() time.Time
}

// NewTracker returns a tracker with a fresh random salt. Hashes are stable
// for the life of the process only.
func NewTracker(db *sql.DB, logger *slog.Logger) (*Tracker, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{db: db, salt: salt, logger: logger, now: time.Now}, nil
}

// RandomToken returns 32 random bytes hex-encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashIP returns the truncated salted hash stored in place of ip.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores a visit.
func (t *Tracker) Record(ctx context.Context, ip, userAgent, path, theme string) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, path, theme, visited_at)
		VALUES (?, ?, ?, ?, ?)
	`, t.HashIP(ip), userAgent, path, theme, t.now().Unix())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than retention and reports how many rows
// went.
func (t *Tracker) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := t.now().Add(-retention).Unix()
	res, err := t.db.ExecContext(ctx, `DELETE FROM visits WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up visits: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		t.logger.Info("privacy cleanup removed old visits", "rows", n, "retention", retention)
	}
	return n, nil
}

// RunCleanup purges old visits immediately and then every interval until
// ctx is done.
func (t *Tracker) RunCleanup(ctx context.Context, retention, interval time.Duration) error {
	if _, err := t.Cleanup(ctx, retention); err != nil {
		t.logger.Error("visit cleanup failed", "err", err)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := t.Cleanup(ctx, retention); err != nil {
				t.logger.Error("visit cleanup failed", "err", err)
			}
		}
	}
}
