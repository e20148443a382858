// Package layout assigns X coordinates to timeline items on a single
// horizontal row. Placement is a heuristic: each item's base position is
// proportional to its chronological midpoint within the overall date span,
// then corrected so that items with overlapping date ranges, or items that
// would simply sit too close together, are pushed apart by a minimum
// distance. It trades optimality for a deterministic pass suitable for tens
// of nodes, not thousands.
package layout

import (
	"math"
	"sort"
	"time"

	"github.com/journeycanvas/timeline/internal/dates"
)

// Position is one item's placement on the timeline. The single-row layout
// always yields Branch 0 and a fixed Y; only X varies.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Branch int     `json:"branch"`
}

// Config holds the layout constants.
type Config struct {
	// StartX is the left edge of the timeline; no item is placed before it.
	StartX float64 `yaml:"start_x"`
	// MinNodeDistance is the minimum horizontal separation enforced between
	// items that overlap in time or collide visually.
	MinNodeDistance float64 `yaml:"min_node_distance"`
	// NodeSpacing scales the even-spacing fallback used when every item
	// shares the same date.
	NodeSpacing float64 `yaml:"node_spacing"`
	// PrimaryY is the fixed row Y coordinate.
	PrimaryY float64 `yaml:"primary_y"`
}

// DefaultConfig returns the standard layout constants.
func DefaultConfig() Config {
	return Config{
		StartX:          200,
		MinNodeDistance: 450,
		NodeSpacing:     600,
		PrimaryY:        300,
	}
}

// PositionAt computes the position of the item at index within items, which
// must be sorted ascending by start date. An out-of-range index returns the
// default start position. The result is a pure function of the inputs.
func (c Config) PositionAt(items []dates.Range, index int) Position {
	return c.PositionAtTime(items, index, time.Now())
}

// PositionAtTime is PositionAt with an explicit "now" for resolving ongoing
// ranges.
func (c Config) PositionAtTime(items []dates.Range, index int, now time.Time) Position {
	if index < 0 || index >= len(items) {
		return Position{X: c.StartX, Y: c.PrimaryY, Branch: 0}
	}
	return c.PositionAllAt(items, now)[index]
}

// PositionAll lays out every item in one forward pass, caching each resolved
// X as it goes so earlier placements never need recomputing.
func (c Config) PositionAll(items []dates.Range) []Position {
	return c.PositionAllAt(items, time.Now())
}

// PositionAllAt is PositionAll with an explicit "now".
func (c Config) PositionAllAt(items []dates.Range, now time.Time) []Position {
	minDate, maxDate, ok := dateBounds(items, now)
	span := 0.0
	if ok {
		span = float64(maxDate.Sub(minDate))
	}

	positions := make([]Position, 0, len(items))
	for i := range items {
		positions = append(positions, c.place(items, positions, i, minDate, span, now))
	}
	return positions
}

// place computes the position of items[i] given the already-placed
// predecessors.
func (c Config) place(items []dates.Range, placed []Position, i int, minDate time.Time, span float64, now time.Time) Position {
	x := c.baseX(items, i, minDate, span, now)

	// Items whose date ranges intersect this one must sit at least
	// MinNodeDistance to the right of the rightmost of them. The scan covers
	// every placed predecessor before the candidate is finalized.
	overlapFound := false
	maxOverlapX := math.Inf(-1)
	for j := range placed {
		if dates.OverlapsAt(items[i], items[j], now) {
			overlapFound = true
			if placed[j].X > maxOverlapX {
				maxOverlapX = placed[j].X
			}
		}
	}

	if overlapFound {
		if floor := maxOverlapX + c.MinNodeDistance; x < floor {
			x = floor
		}
	} else {
		x = c.resolveVisualCollisions(x, placed)
	}

	if x < c.StartX {
		x = c.StartX
	}
	return Position{X: x, Y: c.PrimaryY, Branch: 0}
}

// baseX computes the date-proportional starting candidate for items[i].
func (c Config) baseX(items []dates.Range, i int, minDate time.Time, span float64, now time.Time) float64 {
	if span <= 0 {
		// Degenerate span (single item or all-identical dates): space evenly
		// by index with a doubled spacing constant.
		return c.StartX + float64(i)*math.Max(c.NodeSpacing*2, 600)
	}

	start := dates.ParseFlexibleAt(items[i].Start, now)
	if !start.IsValid {
		// Unparseable start: no chronological anchor, fall back to the left
		// edge and let the collision pass sort it out.
		return c.StartX
	}

	end := effectiveEnd(items[i], now)
	center := start.Date.Add(end.Sub(start.Date) / 2)
	progress := float64(center.Sub(minDate)) / span

	return c.StartX + progress*c.timelineWidth(len(items), false)
}

// timelineWidth picks the drawable width for n items. Few items get a wide
// floor so they do not bunch at the left edge; many items get a capped width
// so the timeline stays navigable.
func (c Config) timelineWidth(n int, zeroSpan bool) float64 {
	base := float64(n) * c.MinNodeDistance
	switch {
	case zeroSpan:
		return math.Max(1200, base*2)
	case n <= 3:
		return math.Max(1200, base*1.5)
	case n <= 8:
		return math.Min(3000, base*1.3)
	default:
		return math.Min(3000, base)
	}
}

// resolveVisualCollisions pushes the candidate X right until it clears every
// placed position by MinNodeDistance, rescanning after each push. The
// iteration bound guarantees termination.
func (c Config) resolveVisualCollisions(x float64, placed []Position) float64 {
	if len(placed) == 0 {
		return x
	}

	xs := make([]float64, len(placed))
	for i, p := range placed {
		xs[i] = p.X
	}
	sort.Float64s(xs)

	maxIter := len(placed) + 1
	for iter := 0; iter < maxIter; iter++ {
		moved := false
		for _, px := range xs {
			if math.Abs(x-px) < c.MinNodeDistance {
				x = px + c.MinNodeDistance
				moved = true
				break
			}
		}
		if !moved {
			break
		}
	}
	return x
}

// dateBounds scans every item's start and, when present, end date and
// returns the chronological extremes. Unparseable dates are skipped; ok is
// false when no date in the set parsed at all.
func dateBounds(items []dates.Range, now time.Time) (minDate, maxDate time.Time, ok bool) {
	for _, it := range items {
		if s := dates.ParseFlexibleAt(it.Start, now); s.IsValid {
			minDate, maxDate, ok = extend(minDate, maxDate, ok, s.Date)
		}
		if it.End == "" {
			continue
		}
		if e := dates.ParseFlexibleAt(it.End, now); e.IsValid {
			minDate, maxDate, ok = extend(minDate, maxDate, ok, e.Date)
		}
	}
	return minDate, maxDate, ok
}

func extend(minDate, maxDate time.Time, ok bool, t time.Time) (time.Time, time.Time, bool) {
	if !ok {
		return t, t, true
	}
	if t.Before(minDate) {
		minDate = t
	}
	if t.After(maxDate) {
		maxDate = t
	}
	return minDate, maxDate, true
}

// effectiveEnd resolves an item's end instant, treating ongoing items as
// ending now.
func effectiveEnd(r dates.Range, now time.Time) time.Time {
	e := dates.ParseFlexibleAt(r.End, now)
	if !e.IsValid || e.Formatted == "Present" {
		return now
	}
	return e.Date
}
