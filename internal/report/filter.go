package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ris2xlsx/internal/ris"
)

// Filters holds the optional record predicates. The zero value passes
// everything.
type Filters struct {
	YearSet  bool // when false the year range is ignored
	MinYear  int  // inclusive
	MaxYear  int  // inclusive
	Keywords []string
}

// Match reports whether a record survives both filters. Records without a
// year never pass a year filter; missing years are excluded, not waved
// through, so the data loss is visible rather than silent.
func (f Filters) Match(rec ris.Record) bool {
	if f.YearSet {
		if rec.Year == 0 || rec.Year < f.MinYear || rec.Year > f.MaxYear {
			return false
		}
	}

	if len(f.Keywords) > 0 {
		title := strings.ToLower(rec.Title)
		for _, kw := range f.Keywords {
			if !strings.Contains(title, strings.ToLower(kw)) {
				return false
			}
		}
	}

	return true
}

var yearRangeRe = regexp.MustCompile(`^\s*(\d{4})\s*-\s*(\d{4})\s*$`)

// ParseYearRange parses a filter string like "2007-2017". Reversed bounds
// are swapped rather than rejected.
func ParseYearRange(s string) (lo, hi int, err error) {
	m := yearRangeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("year filter must look like 2007-2017, got %q", s)
	}
	lo, _ = strconv.Atoi(m[1])
	hi, _ = strconv.Atoi(m[2])
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// ParseKeywords splits a comma-separated keyword list, dropping blanks.
func ParseKeywords(s string) []string {
	var out []string
	for _, kw := range strings.Split(s, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
