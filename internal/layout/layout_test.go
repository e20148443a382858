package layout

import (
	"testing"
	"time"

	"github.com/journeycanvas/timeline/internal/dates"
)

var testNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func career() []dates.Range {
	return []dates.Range{
		{Start: "Sep 2014", End: "Jun 2018"},
		{Start: "Jul 2018", End: "Dec 2019"},
		{Start: "Jan 2020", End: "Jan 2022"},
		{Start: "Feb 2022", End: ""},
	}
}

func TestOutOfRangeIndexReturnsDefault(t *testing.T) {
	cfg := DefaultConfig()
	items := career()

	want := Position{X: 200, Y: 300, Branch: 0}
	for _, idx := range []int{-1, len(items), 99} {
		got := cfg.PositionAtTime(items, idx, testNow)
		if got != want {
			t.Errorf("index %d: got %+v, want %+v", idx, got, want)
		}
	}
}

func TestPositionsNeverLeftOfStart(t *testing.T) {
	cfg := DefaultConfig()
	items := career()

	for i, p := range cfg.PositionAllAt(items, testNow) {
		if p.X < cfg.StartX {
			t.Errorf("item %d: x=%v is left of StartX %v", i, p.X, cfg.StartX)
		}
		if p.Y != cfg.PrimaryY {
			t.Errorf("item %d: y=%v, want %v", i, p.Y, cfg.PrimaryY)
		}
		if p.Branch != 0 {
			t.Errorf("item %d: branch=%d, want 0", i, p.Branch)
		}
	}
}

func TestChronologicalOrderRoughlyPreserved(t *testing.T) {
	cfg := DefaultConfig()
	items := career()

	pos := cfg.PositionAllAt(items, testNow)
	for i := 1; i < len(pos); i++ {
		if pos[i].X < pos[i-1].X {
			t.Errorf("item %d at x=%v placed left of item %d at x=%v", i, pos[i].X, i-1, pos[i-1].X)
		}
	}
}

func TestOverlappingItemsKeepMinimumDistance(t *testing.T) {
	cfg := DefaultConfig()
	// Three concurrent engagements sharing most of their span.
	items := []dates.Range{
		{Start: "Jan 2020", End: "Jan 2022"},
		{Start: "Jun 2020", End: "Jun 2022"},
		{Start: "Jan 2021", End: "Jan 2023"},
	}

	pos := cfg.PositionAllAt(items, testNow)
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if !dates.OverlapsAt(items[i], items[j], testNow) {
				continue
			}
			if d := pos[j].X - pos[i].X; d < cfg.MinNodeDistance {
				t.Errorf("overlapping items %d and %d only %v apart, want >= %v", i, j, d, cfg.MinNodeDistance)
			}
		}
	}
}

func TestOverlapCorrectionUsesRightmostPredecessor(t *testing.T) {
	cfg := DefaultConfig()
	// The third item overlaps both predecessors; it must clear the
	// rightmost of them, not merely the nearest.
	items := []dates.Range{
		{Start: "Jan 2020", End: "Dec 2023"},
		{Start: "Feb 2020", End: "Dec 2023"},
		{Start: "Mar 2020", End: "Dec 2023"},
	}

	pos := cfg.PositionAllAt(items, testNow)
	rightmost := pos[0].X
	if pos[1].X > rightmost {
		rightmost = pos[1].X
	}
	if pos[2].X < rightmost+cfg.MinNodeDistance {
		t.Errorf("item 2 at x=%v, want >= %v", pos[2].X, rightmost+cfg.MinNodeDistance)
	}
}

func TestVisualCollisionPush(t *testing.T) {
	cfg := DefaultConfig()
	// Disjoint ranges packed tightly in time: no date overlap, but the
	// proportional bases land within MinNodeDistance of each other.
	items := []dates.Range{
		{Start: "Jan 2020", End: "Feb 2020"},
		{Start: "Mar 2020", End: "Apr 2020"},
		{Start: "May 2020", End: "Jun 2020"},
	}

	pos := cfg.PositionAllAt(items, testNow)
	for i := 0; i < len(pos); i++ {
		for j := i + 1; j < len(pos); j++ {
			if d := pos[j].X - pos[i].X; d < cfg.MinNodeDistance {
				t.Errorf("items %d and %d only %v apart, want >= %v", i, j, d, cfg.MinNodeDistance)
			}
		}
	}
}

func TestIdenticalDatesSpaceEvenly(t *testing.T) {
	cfg := DefaultConfig()
	items := []dates.Range{
		{Start: "Jan 2020"},
		{Start: "Jan 2020"},
		{Start: "Jan 2020"},
	}

	pos := cfg.PositionAllAt(items, testNow)
	spacing := cfg.NodeSpacing * 2
	for i, p := range pos {
		want := cfg.StartX + float64(i)*spacing
		if p.X != want {
			t.Errorf("item %d: x=%v, want %v", i, p.X, want)
		}
	}
}

func TestSingleItemWithoutEnd(t *testing.T) {
	cfg := DefaultConfig()
	items := []dates.Range{{Start: "Jan 2020"}}

	got := cfg.PositionAtTime(items, 0, testNow)
	want := Position{X: cfg.StartX, Y: cfg.PrimaryY, Branch: 0}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestUnparseableStartFallsBackToStartX(t *testing.T) {
	cfg := DefaultConfig()
	items := []dates.Range{
		{Start: "when I was young", End: ""},
		{Start: "Jan 2010", End: "Jan 2012"},
		{Start: "Jan 2014", End: "Jan 2016"},
	}

	pos := cfg.PositionAllAt(items, testNow)
	// The malformed item anchors at StartX; it never overlaps anything, so
	// only the clamp and collision passes apply.
	if pos[0].X != cfg.StartX {
		t.Errorf("malformed item x=%v, want %v", pos[0].X, cfg.StartX)
	}
	for i, p := range pos {
		if p.X < cfg.StartX {
			t.Errorf("item %d: x=%v below StartX", i, p.X)
		}
	}
}

func TestIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	items := career()

	for i := range items {
		a := cfg.PositionAtTime(items, i, testNow)
		b := cfg.PositionAtTime(items, i, testNow)
		if a != b {
			t.Errorf("index %d: %+v != %+v", i, a, b)
		}
	}

	// Closed ranges are deterministic even across wall-clock calls.
	closed := []dates.Range{
		{Start: "Jan 2010", End: "Jan 2012"},
		{Start: "Jan 2014", End: "Jan 2016"},
	}
	for i := range closed {
		if a, b := cfg.PositionAt(closed, i), cfg.PositionAt(closed, i); a != b {
			t.Errorf("index %d: %+v != %+v", i, a, b)
		}
	}
}

func TestWidthPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		n        int
		zeroSpan bool
		want     float64
	}{
		{2, true, 1800},  // max(1200, 2*450*2)
		{1, true, 1200},  // floor
		{2, false, 1350}, // max(1200, 2*450*1.5)
		{1, false, 1200}, // floor
		{5, false, 2925}, // min(3000, 5*450*1.3)
		{6, false, 3000}, // capped
		{10, false, 3000},
		{4, false, 2340}, // min(3000, 4*450*1.3)
	}
	for _, c := range cases {
		if got := cfg.timelineWidth(c.n, c.zeroSpan); got != c.want {
			t.Errorf("timelineWidth(%d, %v) = %v, want %v", c.n, c.zeroSpan, got, c.want)
		}
	}
}
