package analytics

import (
	"context"
	"fmt"
	"time"
)

// PathCount is a path with its visit count.
type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats summarises the visit log for the admin dashboard.
type Stats struct {
	TotalVisits    int64       `json:"total_visits"`
	UniqueVisitors int64       `json:"unique_visitors"`
	VisitsToday    int64       `json:"visits_today"`
	VisitsThisWeek int64       `json:"visits_this_week"`
	DarkShare      float64     `json:"dark_share"`
	TopPaths       []PathCount `json:"top_paths"`
	RecentVisits   []Visit     `json:"recent_visits"`
}

// Stats computes the dashboard summary.
func (t *Tracker) Stats(ctx context.Context) (*Stats, error) {
	now := t.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	s := &Stats{}
	var dark int64
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&s.TotalVisits, `SELECT COUNT(*) FROM visits`, nil},
		{&s.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&s.VisitsToday, `SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, []any{midnight.Unix()}},
		{&s.VisitsThisWeek, `SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, []any{weekAgo.Unix()}},
		{&dark, `SELECT COUNT(*) FROM visits WHERE theme = 'dark'`, nil},
	}
	for _, c := range counts {
		if err := t.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("querying stats: %w", err)
		}
	}
	if s.TotalVisits > 0 {
		s.DarkShare = float64(dark) / float64(s.TotalVisits)
	}

	var err error
	if s.TopPaths, err = t.topPaths(ctx, 10); err != nil {
		return nil, err
	}
	if s.RecentVisits, err = t.Recent(ctx, 50); err != nil {
		return nil, err
	}
	return s, nil
}

func (t *Tracker) topPaths(ctx context.Context, limit int) ([]PathCount, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visits
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top paths: %w", err)
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, fmt.Errorf("scanning top paths: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// Recent returns the newest visits first.
func (t *Tracker) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), COALESCE(theme, ''), visited_at
		FROM visits
		ORDER BY visited_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Theme, &ts); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		v.VisitedAt = time.Unix(ts, 0)
		out = append(out, v)
	}
	return out, rows.Err()
}
