package render

import (
	"strings"
	"testing"
)

func TestSVGBasics(t *testing.T) {
	items := []Item{
		{Title: "Software Engineer", Subtitle: "Acme", Detail: "Jan 2020 - Present", X: 200, Y: 300},
		{Title: "BSc Computer Science", Subtitle: "State U", Detail: "Sep 2014 - Jun 2018", X: 800, Y: 300},
	}
	out := SVG(items, DefaultOptions())

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`<line`,
		`<circle cx="200"`,
		`<circle cx="800"`,
		"Software Engineer",
		"Jan 2020 - Present",
		"State U",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestSVGWidthFollowsRightmostItem(t *testing.T) {
	opts := DefaultOptions()
	items := []Item{{Title: "x", X: 3000, Y: 300}}
	out := SVG(items, opts)
	if !strings.Contains(out, `width="3200"`) {
		t.Errorf("expected width 3200 (x + margin), got: %s", out[:120])
	}
}

func TestSVGEmpty(t *testing.T) {
	out := SVG(nil, DefaultOptions())
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("empty item list should still produce a valid document")
	}
	if strings.Contains(out, "<circle") {
		t.Error("no markers expected")
	}
}

func TestSVGEscapesText(t *testing.T) {
	items := []Item{{Title: `R&D "Lead" <Platform>`, X: 200, Y: 300}}
	out := SVG(items, DefaultOptions())
	if strings.Contains(out, "R&D") {
		t.Error("ampersand not escaped")
	}
	if !strings.Contains(out, "R&amp;D &quot;Lead&quot; &lt;Platform&gt;") {
		t.Error("expected escaped title text")
	}
}

func TestEstimateTextWidth(t *testing.T) {
	if EstimateTextWidth("", 14) != 0 {
		t.Error("empty text should have zero width")
	}
	if EstimateTextWidth("abcdef", 14) <= EstimateTextWidth("abc", 14) {
		t.Error("longer text should be wider")
	}
}
