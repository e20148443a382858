package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/journeycanvas/timeline/internal/model"
)

// SearchParams holds parameters for searching nodes.
type SearchParams struct {
	Profile string
	Query   string
	Type    string
	Limit   int
}

// Search finds nodes whose key, title, organization, or summary contain the
// query substring. Latest versions only.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Node, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := "%" + p.Query + "%"

	where := []string{"n.deleted_at IS NULL"}
	args := []interface{}{}

	if p.Profile != "" {
		where = append(where, "n.profile = ?")
		args = append(args, p.Profile)
	}
	if p.Type != "" {
		where = append(where, "n.node_type = ?")
		args = append(args, p.Type)
	}

	sql := fmt.Sprintf(`
		SELECT n.id, n.profile, n.key, n.node_type, n.title, n.org, n.summary,
		       n.start_date, n.end_date, n.tags, n.version, n.supersedes,
		       n.created_at, n.deleted_at, n.meta
		FROM nodes n
		INNER JOIN (
			SELECT profile, key, MAX(version) AS max_ver
			FROM nodes WHERE deleted_at IS NULL
			GROUP BY profile, key
		) latest ON n.profile = latest.profile AND n.key = latest.key AND n.version = latest.max_ver
		WHERE %s AND (n.key LIKE ? OR n.title LIKE ? OR n.org LIKE ? OR n.summary LIKE ?)
		ORDER BY n.created_at DESC
		LIMIT ?`, strings.Join(where, " AND "))

	args = append(args, query, query, query, query, limit)

	rows, err := s.db.QueryContext(ctx, sql, args...)
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
