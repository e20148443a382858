package store

import (
	"context"
	"strings"

	"github.com/journeycanvas/timeline/internal/model"
)

// ExportAll returns all non-deleted nodes including historical versions,
// optionally filtered by profile.
func (s *SQLiteStore) ExportAll(ctx context.Context, profile string) ([]model.Node, error) {
	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if profile != "" {
		where = append(where, "profile = ?")
		args = append(args, profile)
	}

	query := `SELECT ` + nodeColumns + `
	          FROM nodes WHERE ` + strings.Join(where, " AND ") + ` ORDER BY profile, key, version`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []model.Node
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Import stores nodes from an export. Each record goes through the normal
// upsert path, so re-importing bumps versions rather than duplicating keys.
func (s *SQLiteStore) Import(ctx context.Context, nodes []model.Node) (int, error) {
	imported := 0
	for _, n := range nodes {
		_, err := s.Put(ctx, PutParams{
			Profile:   n.Profile,
			Key:       n.Key,
			Type:      n.Type,
			Title:     n.Title,
			Org:       n.Org,
			Summary:   n.Summary,
			StartDate: n.StartDate,
			EndDate:   n.EndDate,
			Tags:      n.Tags,
			Meta:      n.Meta,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
