package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/journeycanvas/timeline/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS nodes (
		id          TEXT PRIMARY KEY,
		profile     TEXT NOT NULL,
		key         TEXT NOT NULL,
		node_type   TEXT NOT NULL DEFAULT 'event',
		title       TEXT NOT NULL,
		org         TEXT,
		summary     TEXT,
		start_date  TEXT,
		end_date    TEXT,
		tags        TEXT,
		version     INTEGER NOT NULL DEFAULT 1,
		supersedes  TEXT,
		created_at  TEXT NOT NULL,
		deleted_at  TEXT,
		meta        TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_nodes_profile_key ON nodes(profile, key);
	CREATE INDEX IF NOT EXISTS idx_nodes_profile_type ON nodes(profile, node_type);
	CREATE INDEX IF NOT EXISTS idx_nodes_created ON nodes(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_nodes_deleted ON nodes(deleted_at);

	CREATE TABLE IF NOT EXISTS node_links (
		from_id    TEXT NOT NULL REFERENCES nodes(id),
		to_id      TEXT NOT NULL REFERENCES nodes(id),
		rel        TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (from_id, to_id, rel)
	);
	CREATE INDEX IF NOT EXISTS idx_links_to ON node_links(to_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.Node, error) {
	nodeType := p.Type
	if nodeType == "" {
		nodeType = "event"
	}
	if !model.ValidTypes[nodeType] {
		return nil, fmt.Errorf("invalid node type %q (valid: job, education, project, event, transition, action)", nodeType)
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := time.Now().UTC()
	id := s.newID()

	var tagsJSON *string
	if len(p.Tags) > 0 {
		b, _ := json.Marshal(p.Tags)
		v := string(b)
		tagsJSON = &v
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Check for an existing latest version: an upsert creates a new version
	// that supersedes it.
	var prevID string
	var prevVersion int
	err = tx.QueryRowContext(ctx,
		`SELECT id, version FROM nodes
		 WHERE profile = ? AND key = ? AND deleted_at IS NULL
		 ORDER BY version DESC LIMIT 1`, p.Profile, p.Key).Scan(&prevID, &prevVersion)

	version := 1
	var supersedes *string
	if err == nil {
		version = prevVersion + 1
		supersedes = &prevID
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO nodes (id, profile, key, node_type, title, org, summary, start_date, end_date, tags, version, supersedes, created_at, meta)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Profile, p.Key, nodeType, p.Title, nullable(p.Org), nullable(p.Summary),
		nullable(p.StartDate), nullable(p.EndDate), tagsJSON, version, supersedes,
		now.Format(time.RFC3339), nullable(p.Meta))
	if err != nil {
		return nil, fmt.Errorf("insert node: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	node := &model.Node{
		ID:        id,
		Profile:   p.Profile,
		Key:       p.Key,
		Type:      nodeType,
		Title:     p.Title,
		Org:       p.Org,
		Summary:   p.Summary,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Tags:      p.Tags,
		Version:   version,
		CreatedAt: now,
		Meta:      p.Meta,
	}
	if supersedes != nil {
		node.Supersedes = *supersedes
	}

	return node, nil
}

const nodeColumns = `id, profile, key, node_type, title, org, summary,
                     start_date, end_date, tags, version, supersedes,
                     created_at, deleted_at, meta`

func (s *SQLiteStore) Get(ctx context.Context, p GetParams) ([]model.Node, error) {
	var query string
	var args []interface{}

	if p.History {
		query = `SELECT ` + nodeColumns + `
				 FROM nodes WHERE profile = ? AND key = ? AND deleted_at IS NULL
				 ORDER BY version DESC`
		args = []interface{}{p.Profile, p.Key}
	} else if p.Version > 0 {
		query = `SELECT ` + nodeColumns + `
				 FROM nodes WHERE profile = ? AND key = ? AND version = ? AND deleted_at IS NULL
				 LIMIT 1`
		args = []interface{}{p.Profile, p.Key, p.Version}
	} else {
		query = `SELECT ` + nodeColumns + `
				 FROM nodes WHERE profile = ? AND key = ? AND deleted_at IS NULL
				 ORDER BY version DESC LIMIT 1`
		args = []interface{}{p.Profile, p.Key}
	}

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

	if len(nodes) == 0 {
		return nil, fmt.Errorf("node not found: %s/%s", p.Profile, p.Key)
	}

	return nodes, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Node, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 100
	}

	// Return only the latest version of each profile+key.
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
	for _, tag := range p.Tags {
		where = append(where, "n.tags LIKE ?")
		args = append(args, "%\""+tag+"\"%")
	}

	query := fmt.Sprintf(`
		SELECT n.id, n.profile, n.key, n.node_type, n.title, n.org, n.summary,
		       n.start_date, n.end_date, n.tags, n.version, n.supersedes,
		       n.created_at, n.deleted_at, n.meta
		FROM nodes n
		INNER JOIN (
			SELECT profile, key, MAX(version) AS max_ver
			FROM nodes WHERE deleted_at IS NULL
			GROUP BY profile, key
		) latest ON n.profile = latest.profile AND n.key = latest.key AND n.version = latest.max_ver
		WHERE %s
		ORDER BY n.created_at DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

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

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	if p.Hard {
		if p.AllVersions {
			_, err := s.db.ExecContext(ctx,
				`DELETE FROM node_links WHERE from_id IN (SELECT id FROM nodes WHERE profile = ? AND key = ?)
				    OR to_id IN (SELECT id FROM nodes WHERE profile = ? AND key = ?)`,
				p.Profile, p.Key, p.Profile, p.Key)
			if err != nil {
				return err
			}
			_, err = s.db.ExecContext(ctx, `DELETE FROM nodes WHERE profile = ? AND key = ?`, p.Profile, p.Key)
			return err
		}
		// Hard delete latest only
		var id string
		err := s.db.QueryRowContext(ctx,
			`SELECT id FROM nodes WHERE profile = ? AND key = ? AND deleted_at IS NULL ORDER BY version DESC LIMIT 1`,
			p.Profile, p.Key).Scan(&id)
		if err != nil {
			return fmt.Errorf("node not found: %s/%s", p.Profile, p.Key)
		}
		s.db.ExecContext(ctx, `DELETE FROM node_links WHERE from_id = ? OR to_id = ?`, id, id)
		_, err = s.db.ExecContext(ctx, `DELETE FROM nodes WHERE id = ?`, id)
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if p.AllVersions {
		_, err := s.db.ExecContext(ctx,
			`UPDATE nodes SET deleted_at = ? WHERE profile = ? AND key = ? AND deleted_at IS NULL`,
			now, p.Profile, p.Key)
		return err
	}

	// Soft-delete latest version only
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM nodes WHERE profile = ? AND key = ? AND deleted_at IS NULL ORDER BY version DESC LIMIT 1`,
		p.Profile, p.Key).Scan(&id)
	if err != nil {
		return fmt.Errorf("node not found: %s/%s", p.Profile, p.Key)
	}
	_, err = s.db.ExecContext(ctx, `UPDATE nodes SET deleted_at = ? WHERE id = ?`, now, id)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNode(row scanner) (model.Node, error) {
	var n model.Node
	var org, summary, startDate, endDate, tagsJSON, supersedes, deletedAt, meta sql.NullString
	var createdAt string

	err := row.Scan(
		&n.ID, &n.Profile, &n.Key, &n.Type, &n.Title, &org, &summary,
		&startDate, &endDate, &tagsJSON, &n.Version, &supersedes,
		&createdAt, &deletedAt, &meta,
	)
	if err != nil {
		return n, err
	}

	n.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	n.Org = org.String
	n.Summary = summary.String
	n.StartDate = startDate.String
	n.EndDate = endDate.String
	n.Meta = meta.String
	if supersedes.Valid {
		n.Supersedes = supersedes.String
	}
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339, deletedAt.String)
		n.DeletedAt = &t
	}
	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &n.Tags)
	}

	return n, nil
}

// nullable maps "" to NULL so optional text columns stay NULL instead of
// storing empty strings.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
