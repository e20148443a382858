// Package dates parses the loosely formatted date strings that career
// timeline entries carry and derives display strings, durations, and
// interval overlaps from them. Input arrives as free text typed by users or
// imported from third-party profiles, so parsing degrades instead of
// failing: an unreadable date yields IsValid=false and a placeholder value,
// never an error.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DisplayLayout is the canonical display format for parsed dates.
const DisplayLayout = "Jan 2006"

// layouts are tried in order; the first one that parses wins. Roughly the
// formats observed in imported profile data, most common first.
var layouts = []string{
	"Jan 2006",
	"January 2006",
	"01/2006",
	"1/2006",
	"2006-01-02",
	"2006-01",
	"02.01.2006",
	"01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2006/01/02",
	"01/02/2006",
	"2006",
}

// genericLayouts are a second-chance net for machine-produced strings that
// the explicit list above does not cover.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.ANSIC,
}

var yearRE = regexp.MustCompile(`(19|20)\d\d`)

var logger = zap.NewNop()

// SetLogger routes parse diagnostics to the given logger. The default is a
// no-op logger so library use stays quiet.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// ParsedDate is the outcome of interpreting a raw string as a calendar
// date. When IsValid is false, Date holds an arbitrary placeholder (the
// current time) and must not be used for comparison or ordering; callers
// branch on IsValid first.
type ParsedDate struct {
	Date      time.Time
	Formatted string
	IsValid   bool
	Original  string
}

// Range is one timeline item's temporal extent. Start is a raw date string;
// End is optional, with "" and "present"/"current" meaning ongoing.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// ParseFlexible interprets a raw date string, trying each known format in
// turn and falling back to bare-year extraction. It never fails: unreadable
// input comes back with IsValid=false.
func ParseFlexible(raw string) ParsedDate {
	return ParseFlexibleAt(raw, time.Now())
}

// ParseFlexibleAt is ParseFlexible with an explicit "now", so a whole layout
// pass can resolve ongoing items against a single instant.
func ParseFlexibleAt(raw string, now time.Time) ParsedDate {
	trimmed := strings.TrimSpace(raw)

	// "null"/"undefined" show up when an upstream serializer stringified a
	// missing value; treat them the same as no date at all.
	if trimmed == "" || trimmed == "null" || trimmed == "undefined" {
		return ParsedDate{Date: now, Formatted: "", IsValid: false, Original: raw}
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "present") || strings.Contains(lower, "current") {
		return ParsedDate{Date: now, Formatted: "Present", IsValid: true, Original: raw}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return ParsedDate{Date: t, Formatted: t.Format(DisplayLayout), IsValid: true, Original: raw}
		}
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return ParsedDate{Date: t, Formatted: t.Format(DisplayLayout), IsValid: true, Original: raw}
		}
	}

	// Last resort: any plausible 4-digit year anywhere in the string.
	if y := yearRE.FindString(trimmed); y != "" {
		t, err := time.Parse("2006", y)
		if err == nil {
			return ParsedDate{Date: t, Formatted: y, IsValid: true, Original: raw}
		}
	}

	logger.Warn("unparseable date string", zap.String("value", raw))
	return ParsedDate{Date: now, Formatted: "", IsValid: false, Original: raw}
}

// ongoing reports whether a parsed end date means "still running": absent,
// unparseable, or the literal Present.
func ongoing(end ParsedDate) bool {
	return !end.IsValid || end.Formatted == "Present"
}

// FormatRange renders a start/end pair for display, e.g. "Jan 2020 - Present"
// or "Jan 2020 - Dec 2020". An invalid start yields "" rather than a
// dash-only string.
func FormatRange(start, end string) string {
	s := ParseFlexible(start)
	if !s.IsValid {
		return ""
	}
	e := ParseFlexible(end)
	if ongoing(e) {
		return s.Formatted + " - Present"
	}
	return s.Formatted + " - " + e.Formatted
}

// CalculateDuration renders the elapsed time between two date strings as
// "N months" below a year and "Y years[, M months]" at or above it. A
// missing or invalid end means "now". Returns "" when the start itself
// cannot be parsed.
func CalculateDuration(start, end string) string {
	return CalculateDurationAt(start, end, time.Now())
}

// CalculateDurationAt is CalculateDuration against an explicit "now".
func CalculateDurationAt(start, end string, now time.Time) string {
	s := ParseFlexibleAt(start, now)
	if !s.IsValid {
		return ""
	}

	endDate := now
	if e := ParseFlexibleAt(end, now); !ongoing(e) {
		endDate = e.Date
	}

	months := monthsBetween(s.Date, endDate)
	if months < 12 {
		return plural(months, "month")
	}
	years := months / 12
	rem := months % 12
	out := plural(years, "year")
	if rem > 0 {
		out += ", " + plural(rem, "month")
	}
	return out
}

// avgMonthHours is the mean Gregorian month length, in hours, used for the
// duration approximation.
const avgMonthHours = 30.44 * 24

// monthsBetween counts whole months between two instants, rounding on the
// 30.44-day average and flooring at one month.
func monthsBetween(start, end time.Time) int {
	months := int(end.Sub(start).Hours()/avgMonthHours + 0.5)
	if months < 1 {
		months = 1
	}
	return months
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// Overlaps reports whether two date ranges intersect. Ranges are closed
// intervals, so touching at a single instant counts. If either start is
// unparseable the ranges are conservatively declared non-overlapping;
// missing or unparseable ends default to "now".
func Overlaps(a, b Range) bool {
	return OverlapsAt(a, b, time.Now())
}

// OverlapsAt is Overlaps against an explicit "now".
func OverlapsAt(a, b Range, now time.Time) bool {
	aStart := ParseFlexibleAt(a.Start, now)
	bStart := ParseFlexibleAt(b.Start, now)
	if !aStart.IsValid || !bStart.IsValid {
		return false
	}

	aEnd := rangeEnd(a, now)
	bEnd := rangeEnd(b, now)

	return !aStart.Date.After(bEnd) && !bStart.Date.After(aEnd)
}

// rangeEnd resolves a range's effective end instant, treating ongoing
// ranges as ending now.
func rangeEnd(r Range, now time.Time) time.Time {
	e := ParseFlexibleAt(r.End, now)
	if ongoing(e) {
		return now
	}
	return e.Date
}
