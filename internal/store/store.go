// Package store provides the timeline node storage interface and SQLite
// implementation.
package store

import (
	"context"

	"github.com/journeycanvas/timeline/internal/model"
)

// PutParams holds parameters for storing a node.
type PutParams struct {
	Profile   string
	Key       string
	Type      string
	Title     string
	Org       string
	Summary   string
	StartDate string
	EndDate   string
	Tags      []string
	Meta      string
}

// GetParams holds parameters for retrieving a node.
type GetParams struct {
	Profile string
	Key     string
	History bool
	Version int // 0 means latest
}

// ListParams holds parameters for listing nodes.
type ListParams struct {
	Profile  string
	Type     string
	Tags     []string
	Limit    int
	KeysOnly bool
}

// RmParams holds parameters for deleting a node.
type RmParams struct {
	Profile     string
	Key         string
	AllVersions bool
	Hard        bool
}

// Store defines the node storage interface.
type Store interface {
	// Put stores or updates a node. Returns the created version.
	Put(ctx context.Context, p PutParams) (*model.Node, error)

	// Get retrieves a node by profile and key.
	// Returns a slice (single element normally, multiple with History=true).
	Get(ctx context.Context, p GetParams) ([]model.Node, error)

	// List lists nodes matching the given filters, latest versions only.
	List(ctx context.Context, p ListParams) ([]model.Node, error)

	// Rm soft-deletes (or hard-deletes) a node.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
