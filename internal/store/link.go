package store

import (
	"context"
	"fmt"
	"time"

	"github.com/journeycanvas/timeline/internal/model"
)

// LinkParams holds parameters for creating/removing a link between nodes.
type LinkParams struct {
	FromProfile string
	FromKey     string
	ToProfile   string
	ToKey       string
	Rel         string // led_to | part_of | relates_to | transitioned_to
	Remove      bool
}

// Link represents a relation between two nodes, e.g. a job that led_to the
// next one, or a project that is part_of a job.
type Link struct {
	FromID    string `json:"from_id"`
	ToID      string `json:"to_id"`
	Rel       string `json:"rel"`
	CreatedAt string `json:"created_at"`
}

// Link creates or removes a relation between two nodes.
func (s *SQLiteStore) Link(ctx context.Context, p LinkParams) (*Link, error) {
	if !model.ValidRels[p.Rel] {
		return nil, fmt.Errorf("invalid relation %q (valid: led_to, part_of, relates_to, transitioned_to)", p.Rel)
	}

	fromID, err := s.resolveNodeID(ctx, p.FromProfile, p.FromKey)
	if err != nil {
		return nil, fmt.Errorf("resolve from: %w", err)
	}
	toID, err := s.resolveNodeID(ctx, p.ToProfile, p.ToKey)
	if err != nil {
		return nil, fmt.Errorf("resolve to: %w", err)
	}

	if p.Remove {
		_, err := s.db.ExecContext(ctx,
			`DELETE FROM node_links WHERE from_id = ? AND to_id = ? AND rel = ?`,
			fromID, toID, p.Rel)
		if err != nil {
			return nil, err
		}
		return &Link{FromID: fromID, ToID: toID, Rel: p.Rel}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO node_links (from_id, to_id, rel, created_at) VALUES (?, ?, ?, ?)`,
		fromID, toID, p.Rel, now)
	if err != nil {
		return nil, err
	}

	return &Link{FromID: fromID, ToID: toID, Rel: p.Rel, CreatedAt: now}, nil
}

// Links returns all links touching the node identified by profile/key.
func (s *SQLiteStore) Links(ctx context.Context, profile, key string) ([]Link, error) {
	id, err := s.resolveNodeID(ctx, profile, key)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT from_id, to_id, rel, created_at FROM node_links
		 WHERE from_id = ? OR to_id = ? ORDER BY created_at`, id, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.FromID, &l.ToID, &l.Rel, &l.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, nil
}

// resolveNodeID finds the latest live version's id for a profile/key pair.
func (s *SQLiteStore) resolveNodeID(ctx context.Context, profile, key string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM nodes WHERE profile = ? AND key = ? AND deleted_at IS NULL
		 ORDER BY version DESC LIMIT 1`, profile, key).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("node not found: %s/%s", profile, key)
	}
	return id, nil
}
