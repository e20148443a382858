// Package timeline assembles stored nodes into a positioned, display-ready
// timeline: nodes are sorted by parsed start date, run through the layout
// engine, and paired with their formatted date range and duration.
package timeline

import (
	"sort"
	"time"

	"github.com/journeycanvas/timeline/internal/dates"
	"github.com/journeycanvas/timeline/internal/layout"
	"github.com/journeycanvas/timeline/internal/model"
)

// Entry is one node with its computed placement and display strings.
type Entry struct {
	Node      model.Node      `json:"node"`
	Position  layout.Position `json:"position"`
	DateRange string          `json:"date_range,omitempty"`
	Duration  string          `json:"duration,omitempty"`
}

// Build sorts nodes chronologically, lays them out, and returns the
// entries in layout order. The same instant resolves every ongoing range in
// the pass, so the result is a pure function of nodes, cfg, and now.
func Build(nodes []model.Node, cfg layout.Config, now time.Time) []Entry {
	sorted := SortByStart(nodes, now)

	items := make([]dates.Range, len(sorted))
	for i, n := range sorted {
		items[i] = dates.Range{Start: n.StartDate, End: n.EndDate}
	}

	positions := cfg.PositionAllAt(items, now)

	entries := make([]Entry, len(sorted))
	for i, n := range sorted {
		entries[i] = Entry{
			Node:      n,
			Position:  positions[i],
			DateRange: dates.FormatRange(n.StartDate, n.EndDate),
			Duration:  dates.CalculateDurationAt(n.StartDate, n.EndDate, now),
		}
	}
	return entries
}

// SortByStart orders nodes ascending by parsed start date. Nodes whose
// start does not parse sort after all dated nodes, keeping their relative
// order; the layout engine anchors them at the start edge anyway.
func SortByStart(nodes []model.Node, now time.Time) []model.Node {
	type keyed struct {
		node  model.Node
		start dates.ParsedDate
	}
	ks := make([]keyed, len(nodes))
	for i, n := range nodes {
		ks[i] = keyed{node: n, start: dates.ParseFlexibleAt(n.StartDate, now)}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		a, b := ks[i].start, ks[j].start
		if a.IsValid != b.IsValid {
			return a.IsValid
		}
		if !a.IsValid {
			return false
		}
		return a.Date.Before(b.Date)
	})

	out := make([]model.Node, len(ks))
	for i, k := range ks {
		out[i] = k.node
	}
	return out
}
