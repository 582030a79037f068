// Package ris parses RIS bibliographic export files.
package ris

import (
	"regexp"
	"strings"
)

// Record is one parsed bibliographic entry. Fields that a file does not
// provide stay empty (Year 0 means no year); parsing never fails an entry
// over a missing field.
type Record struct {
	Title         string
	Year          int
	Index         string // label for the originating database
	DOI           string
	AuthorName    string // given name(s) of the first author
	AuthorSurname string
}

// Tag precedence when extracting a single field from an entry. Vendors
// disagree on which tag carries what, so we take the first non-empty match.
var (
	titleTags  = []string{"T1", "TI", "CT", "BT"}
	doiTags    = []string{"DO", "DOI"}
	authorTags = []string{"AU", "A1", "AF", "A2", "A3", "A4", "ED"}
	yearTags   = []string{"PY", "Y1", "DA", "DP"}
)

var (
	doiURLRe = regexp.MustCompile(`(?i)^https?://doi\.org/`)
	yearRe   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// CleanDOI strips a doi.org URL prefix; some exporters store the DOI as a
// full link.
func CleanDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	return strings.TrimSpace(doiURLRe.ReplaceAllString(doi, ""))
}

// SplitAuthor splits an RIS author value into given name and surname.
// "Surname, Given" splits on the first comma; without a comma the whole
// value is treated as the surname.
func SplitAuthor(author string) (given, surname string) {
	author = strings.TrimSpace(author)
	if author == "" {
		return "", ""
	}
	if i := strings.Index(author, ","); i >= 0 {
		return strings.TrimSpace(author[i+1:]), strings.TrimSpace(author[:i])
	}
	return "", author
}
