// Package model defines the core timeline node data types.
package model

import "time"

// Node represents one item on a career timeline: a job, a degree, a
// project, and so on. StartDate and EndDate hold the raw user-entered
// strings; parsing them is the dates package's job.
type Node struct {
	ID         string     `json:"id"`
	Profile    string     `json:"profile"`
	Key        string     `json:"key"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Org        string     `json:"org,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	StartDate  string     `json:"start_date,omitempty"`
	EndDate    string     `json:"end_date,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Version    int        `json:"version"`
	Supersedes string     `json:"supersedes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	Meta       string     `json:"meta,omitempty"`
}

// ValidTypes are the allowed node types.
var ValidTypes = map[string]bool{
	"job":        true,
	"education":  true,
	"project":    true,
	"event":      true,
	"transition": true,
	"action":     true,
}

// ValidRels are the allowed relations between nodes.
var ValidRels = map[string]bool{
	"led_to":          true,
	"part_of":         true,
	"relates_to":      true,
	"transitioned_to": true,
}
