// Package render draws a laid-out timeline as a standalone SVG document:
// one horizontal axis, a marker per node, and labels alternating above and
// below the axis so adjacent entries do not fight for the same space.
package render

import (
	"fmt"
	"strings"
)

// Item is one positioned node ready to draw.
type Item struct {
	Title    string  // node title, e.g. "Senior Engineer"
	Subtitle string  // organization, may be empty
	Detail   string  // date range / duration line, may be empty
	X        float64 // layout X coordinate
	Y        float64 // layout Y (row) coordinate
}

// Options controls SVG appearance.
type Options struct {
	Height     int    `yaml:"height"`
	Margin     int    `yaml:"margin"`
	Background string `yaml:"background"`
	LineColor  string `yaml:"line_color"`
	NodeColor  string `yaml:"node_color"`
	TextColor  string `yaml:"text_color"`
	MutedColor string `yaml:"muted_color"`
	FontFamily string `yaml:"font_family"`
	FontSize   int    `yaml:"font_size"`
	NodeRadius int    `yaml:"node_radius"`
}

// DefaultOptions returns the standard rendering style.
func DefaultOptions() Options {
	return Options{
		Height:     600,
		Margin:     200,
		Background: "#ffffff",
		LineColor:  "#94a3b8",
		NodeColor:  "#2563eb",
		TextColor:  "#0f172a",
		MutedColor: "#64748b",
		FontFamily: "Arial, sans-serif",
		FontSize:   14,
		NodeRadius: 8,
	}
}

// SVG renders the items into an SVG document string. Width follows the
// rightmost item plus the margin; an empty item list still yields a valid
// document.
func SVG(items []Item, opts Options) string {
	width := float64(2 * opts.Margin)
	for _, it := range items {
		if it.X+float64(opts.Margin) > width {
			width = it.X + float64(opts.Margin)
		}
	}

	axisY := float64(opts.Height) / 2
	if len(items) > 0 {
		axisY = items[0].Y
	}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%d" viewBox="0 0 %.0f %d">`+"\n",
		width, opts.Height, width, opts.Height)
	fmt.Fprintf(&svg, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background)
	fmt.Fprintf(&svg, `  <line x1="0" y1="%.0f" x2="%.0f" y2="%.0f" stroke="%s" stroke-width="2"/>`+"\n",
		axisY, width, axisY, opts.LineColor)

	for i, it := range items {
		drawItem(&svg, it, i, opts)
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// drawItem draws a single node marker and its label block. Even-indexed
// items label above the axis, odd-indexed below.
func drawItem(svg *strings.Builder, it Item, index int, opts Options) {
	fmt.Fprintf(svg, `  <circle cx="%.0f" cy="%.0f" r="%d" fill="%s"/>`+"\n",
		it.X, it.Y, opts.NodeRadius, opts.NodeColor)

	lineHeight := opts.FontSize + 4
	var y float64
	if index%2 == 0 {
		y = it.Y - float64(opts.NodeRadius) - float64(3*lineHeight)
	} else {
		y = it.Y + float64(opts.NodeRadius) + float64(lineHeight)
	}

	write := func(text, color string, bold bool) {
		if text == "" {
			return
		}
		weight := ""
		if bold {
			weight = ` font-weight="bold"`
		}
		fmt.Fprintf(svg, `  <text x="%.0f" y="%.0f" text-anchor="middle" font-family="%s" font-size="%d" fill="%s"%s>%s</text>`+"\n",
			it.X, y, opts.FontFamily, opts.FontSize, color, weight, escapeXML(text))
		y += float64(lineHeight)
	}

	write(it.Title, opts.TextColor, true)
	write(it.Subtitle, opts.TextColor, false)
	write(it.Detail, opts.MutedColor, false)
}

// EstimateTextWidth approximates rendered pixel width for proportional
// fonts; good enough for sizing checks, not typography.
func EstimateTextWidth(text string, fontSize int) int {
	return int(float64(len(text)) * float64(fontSize) * 0.6)
}

// escapeXML escapes the five XML special characters in text content.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
