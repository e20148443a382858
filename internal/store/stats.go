package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string         `json:"db_path"`
	DBSizeBytes int64          `json:"db_size_bytes"`
	TotalNodes  int            `json:"total_nodes"`
	ActiveNodes int            `json:"active_nodes"`
	TotalLinks  int            `json:"total_links"`
	Profiles    []ProfileStats `json:"profiles"`
}

// ProfileStats holds per-profile counts.
type ProfileStats struct {
	Profile string `json:"profile"`
	Count   int    `json:"count"`
	Keys    int    `json:"keys"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM nodes`).Scan(&st.TotalNodes)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM nodes WHERE deleted_at IS NULL`).Scan(&st.ActiveNodes)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM node_links`).Scan(&st.TotalLinks)

	rows, err := s.db.QueryContext(ctx, `
		SELECT profile, COUNT(*) as cnt, COUNT(DISTINCT key) as keys
		FROM nodes WHERE deleted_at IS NULL
		GROUP BY profile ORDER BY cnt DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ps ProfileStats
		rows.Scan(&ps.Profile, &ps.Count, &ps.Keys)
		st.Profiles = append(st.Profiles, ps)
	}

	return st, nil
}

// ListProfiles returns the distinct profiles with live nodes.
func (s *SQLiteStore) ListProfiles(ctx context.Context) ([]ProfileStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT profile, COUNT(*) as cnt, COUNT(DISTINCT key) as keys
		FROM nodes WHERE deleted_at IS NULL
		GROUP BY profile ORDER BY profile`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []ProfileStats
	for rows.Next() {
		var ps ProfileStats
		if err := rows.Scan(&ps.Profile, &ps.Count, &ps.Keys); err != nil {
			return nil, err
		}
		profiles = append(profiles, ps)
	}
	return profiles, nil
}
