package timeline

import (
	"testing"
	"time"

	"github.com/journeycanvas/timeline/internal/layout"
	"github.com/journeycanvas/timeline/internal/model"
)

var testNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestBuildSortsAndPositions(t *testing.T) {
	nodes := []model.Node{
		{Key: "job-1", Title: "Engineer", StartDate: "Jan 2020", EndDate: "Jan 2022"},
		{Key: "edu-1", Title: "BSc", StartDate: "Sep 2014", EndDate: "Jun 2018"},
		{Key: "job-2", Title: "Senior Engineer", StartDate: "Feb 2022"},
	}

	entries := Build(nodes, layout.DefaultConfig(), testNow)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	wantOrder := []string{"edu-1", "job-1", "job-2"}
	for i, key := range wantOrder {
		if entries[i].Node.Key != key {
			t.Errorf("entry %d: key %q, want %q", i, entries[i].Node.Key, key)
		}
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].Position.X <= entries[i-1].Position.X {
			t.Errorf("entry %d not right of entry %d", i, i-1)
		}
	}

	if entries[2].DateRange != "Feb 2022 - Present" {
		t.Errorf("ongoing range = %q", entries[2].DateRange)
	}
	if entries[0].Duration == "" {
		t.Error("expected a duration for the dated entry")
	}
}

func TestBuildDeterministic(t *testing.T) {
	nodes := []model.Node{
		{Key: "a", StartDate: "Jan 2020", EndDate: ""},
		{Key: "b", StartDate: "Jan 2021", EndDate: "Jan 2023"},
	}
	cfg := layout.DefaultConfig()

	e1 := Build(nodes, cfg, testNow)
	e2 := Build(nodes, cfg, testNow)
	for i := range e1 {
		if e1[i].Position != e2[i].Position {
			t.Errorf("entry %d: %+v != %+v", i, e1[i].Position, e2[i].Position)
		}
	}
}

func TestSortByStartMalformedLast(t *testing.T) {
	nodes := []model.Node{
		{Key: "bad-1", StartDate: "someday"},
		{Key: "ok-1", StartDate: "Jan 2020"},
		{Key: "bad-2", StartDate: ""},
		{Key: "ok-2", StartDate: "Jan 2010"},
	}

	sorted := SortByStart(nodes, testNow)
	wantOrder := []string{"ok-2", "ok-1", "bad-1", "bad-2"}
	for i, key := range wantOrder {
		if sorted[i].Key != key {
			t.Errorf("position %d: key %q, want %q", i, sorted[i].Key, key)
		}
	}
}
