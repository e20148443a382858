package store

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/journeycanvas/timeline/internal/dates"
	"github.com/journeycanvas/timeline/internal/model"
	"github.com/journeycanvas/timeline/internal/timeline"
)

// SummaryParams holds parameters for profile summary assembly.
type SummaryParams struct {
	Profile string
	Type    string
	Budget  int // max chars in output
}

// SummaryLine is one scored node rendered for the summary.
type SummaryLine struct {
	Key   string  `json:"key"`
	Type  string  `json:"type"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// SummaryResult is the assembled profile summary.
type SummaryResult struct {
	Budget int           `json:"budget"`
	Used   int           `json:"used"`
	Lines  []SummaryLine `json:"lines"`
	Text   string        `json:"text"`
}

// typeWeights rank how much a node type usually matters in a career
// summary; positions first, one-off actions last.
var typeWeights = map[string]float64{
	"job":        1.0,
	"education":  0.8,
	"project":    0.7,
	"transition": 0.6,
	"event":      0.5,
	"action":     0.4,
}

// Summary assembles the most relevant nodes of a profile into a plain-text
// summary within a character budget. Nodes are scored by how current they
// are (ongoing engagements first, then recency of start) and by type weight,
// then greedily packed highest-score first.
func (s *SQLiteStore) Summary(ctx context.Context, p SummaryParams) (*SummaryResult, error) {
	budget := p.Budget
	if budget <= 0 {
		budget = 2000
	}

	nodes, err := s.List(ctx, ListParams{Profile: p.Profile, Type: p.Type, Limit: 1000})
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return &SummaryResult{Budget: budget, Lines: []SummaryLine{}}, nil
	}

	now := time.Now()
	type scored struct {
		node  model.Node
		score float64
	}
	var candidates []scored
	for _, n := range nodes {
		candidates = append(candidates, scored{node: n, score: scoreNode(n, now)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	result := &SummaryResult{Budget: budget, Lines: []SummaryLine{}}
	var picked []model.Node
	used := 0
	lineFor := map[string]SummaryLine{}

	for _, c := range candidates {
		text := summaryLine(c.node, now)
		if used+len(text)+1 > budget {
			continue
		}
		used += len(text) + 1 // newline
		picked = append(picked, c.node)
		lineFor[c.node.ID] = SummaryLine{
			Key:   c.node.Key,
			Type:  c.node.Type,
			Text:  text,
			Score: math.Round(c.score*100) / 100,
		}
	}

	// Present the picked nodes chronologically even though they were chosen
	// by score.
	ordered := timeline.SortByStart(picked, now)
	var b strings.Builder
	for _, n := range ordered {
		line := lineFor[n.ID]
		result.Lines = append(result.Lines, line)
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	result.Used = used
	result.Text = b.String()

	return result, nil
}

// scoreNode weighs a node for summary inclusion: ongoing engagements
// dominate, then recent starts (exponential decay, roughly a five-year
// half-life), then type weight.
func scoreNode(n model.Node, now time.Time) float64 {
	recency := 0.0
	start := dates.ParseFlexibleAt(n.StartDate, now)
	if start.IsValid {
		years := now.Sub(start.Date).Hours() / (24 * 365.25)
		if years < 0 {
			years = 0
		}
		recency = math.Exp(-0.14 * years)
	}

	ongoing := 0.0
	end := dates.ParseFlexibleAt(n.EndDate, now)
	if start.IsValid && (!end.IsValid || end.Formatted == "Present") {
		ongoing = 1.0
	}

	weight := typeWeights[n.Type]

	return ongoing*0.4 + recency*0.35 + weight*0.25
}

// summaryLine renders one node as a single summary line, e.g.
// "Senior Engineer @ Acme (Jan 2020 - Present, 2 years)".
func summaryLine(n model.Node, now time.Time) string {
	var b strings.Builder
	b.WriteString(n.Title)
	if n.Org != "" {
		b.WriteString(" @ ")
		b.WriteString(n.Org)
	}

	rng := dates.FormatRange(n.StartDate, n.EndDate)
	dur := dates.CalculateDurationAt(n.StartDate, n.EndDate, now)
	switch {
	case rng != "" && dur != "":
		fmt.Fprintf(&b, " (%s, %s)", rng, dur)
	case rng != "":
		fmt.Fprintf(&b, " (%s)", rng)
	}
	return b.String()
}
