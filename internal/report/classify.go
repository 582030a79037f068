// Package report turns parsed RIS records into grouped folder reports.
package report

import (
	"path/filepath"
	"regexp"
	"strings"
)

// GroupKind says how a file was classified into a group.
type GroupKind int

const (
	// QueryGroup collects files sharing a search-query filename prefix,
	// e.g. "1.(MTHFR and HPV)_0-100.ris" and "1.(MTHFR and HPV)_all.ris".
	QueryGroup GroupKind = iota
	// FileGroup is a file whose name carries no query prefix; the file
	// stands alone and is keyed by its full name.
	FileGroup
)

func (k GroupKind) String() string {
	if k == QueryGroup {
		return "query"
	}
	return "file"
}

// GroupClass is the classification of one filename.
type GroupClass struct {
	Key  string // stable group identity, also the display label
	Kind GroupKind
}

// queryPrefixRe matches the query portion of names like
// "1.(MTHFR and HPV)_0-100.ris": an optional leading number and dot, a
// parenthesized query, then an underscore and any suffix.
var queryPrefixRe = regexp.MustCompile(`^((?:\d+\.)?\(.+\))_.+$`)

// Classify decides the group for a filename (no directory component).
// It is a pure function: the same name always yields the same key, and the
// underscore suffix ("_0-100", "_all", ...) never influences the key.
func Classify(filename string) GroupClass {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	if m := queryPrefixRe.FindStringSubmatch(stem); m != nil {
		return GroupClass{Key: m[1], Kind: QueryGroup}
	}
	return GroupClass{Key: filename, Kind: FileGroup}
}
