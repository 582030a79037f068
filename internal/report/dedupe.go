package report

import (
	"strconv"
	"strings"

	"ris2xlsx/internal/ris"
)

// identityKey derives the duplicate-identity of a record. A non-empty DOI
// always wins; otherwise the key falls back to title+year+first-author
// surname. The fallback is a heuristic: records missing all three collide on
// the empty composite and only the first survives. That is long-standing
// behavior downstream readers rely on, so it stays.
func identityKey(rec ris.Record) string {
	if doi := strings.ToLower(strings.TrimSpace(rec.DOI)); doi != "" {
		return "doi\x1f" + doi
	}

	year := ""
	if rec.Year != 0 {
		year = strconv.Itoa(rec.Year)
	}
	parts := []string{
		strings.ToLower(strings.TrimSpace(rec.Title)),
		year,
		strings.ToLower(strings.TrimSpace(rec.AuthorSurname)),
	}
	return "tya\x1f" + strings.Join(parts, "\x1f")
}

// dedupeMask marks, for each record, whether it is the first occurrence of
// its identity. Single pass, order preserving.
func dedupeMask(recs []ris.Record) []bool {
	seen := make(map[string]bool, len(recs))
	keep := make([]bool, len(recs))
	for i, rec := range recs {
		key := identityKey(rec)
		if seen[key] {
			continue
		}
		seen[key] = true
		keep[i] = true
	}
	return keep
}
