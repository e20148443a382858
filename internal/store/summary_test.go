package store

import (
	"context"
	"strings"
	"testing"
)

func TestSummaryAssemblesProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Profile: "alice", Key: "bsc", Type: "education", Title: "BSc Computer Science", Org: "State University", StartDate: "Sep 2014", EndDate: "Jun 2018"})
	s.Put(ctx, PutParams{Profile: "alice", Key: "swe", Type: "job", Title: "Software Engineer", Org: "Acme", StartDate: "Jan 2020", EndDate: "present"})

	res, err := s.Summary(ctx, SummaryParams{Profile: "alice"})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(res.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(res.Lines))
	}

	// Output is chronological regardless of score order.
	if res.Lines[0].Key != "bsc" || res.Lines[1].Key != "swe" {
		t.Errorf("order: %q then %q", res.Lines[0].Key, res.Lines[1].Key)
	}

	if !strings.Contains(res.Text, "Software Engineer @ Acme") {
		t.Errorf("text missing job line: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Present") {
		t.Errorf("ongoing job should render Present: %q", res.Text)
	}
	if res.Used <= 0 || res.Used > res.Budget {
		t.Errorf("used %d outside budget %d", res.Used, res.Budget)
	}
}

func TestSummaryRespectsBudget(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Profile: "p", Key: "old", Type: "event", Title: "Attended a very long-winded industry conference somewhere", StartDate: "Jan 2001", EndDate: "Jan 2001"})
	s.Put(ctx, PutParams{Profile: "p", Key: "now", Type: "job", Title: "Engineer", Org: "Acme", StartDate: "Jan 2024", EndDate: "present"})

	res, err := s.Summary(ctx, SummaryParams{Profile: "p", Budget: 60})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	// The ongoing job scores highest and fits; the long old event does not.
	if len(res.Lines) != 1 {
		t.Fatalf("expected 1 line under tight budget, got %d", len(res.Lines))
	}
	if res.Lines[0].Key != "now" {
		t.Errorf("expected the ongoing job, got %q", res.Lines[0].Key)
	}
}

func TestSummaryEmptyProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	res, err := s.Summary(ctx, SummaryParams{Profile: "ghost"})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(res.Lines) != 0 || res.Used != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}
