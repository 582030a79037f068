package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"ris2xlsx/internal/ris"
)

// Group is one display bucket of records.
type Group struct {
	Key     string
	Kind    GroupKind
	Members []ris.Record
}

// Row is one record of the flat raw view, tagged with the group it was
// assigned to.
type Row struct {
	Group string
	Rec   ris.Record
}

// Stats summarizes one folder job for the CLI summary line.
type Stats struct {
	Files        int
	Parsed       int
	Kept         int
	DupesRemoved int
}

// Result is the output of one folder job: the grouped view, the flat raw
// view, and processing counters. Folder jobs share no state, so results can
// be produced independently per folder.
type Result struct {
	Folder   string // folder base name
	Groups   []Group
	Flat     []Row
	Stats    Stats
	Warnings []string
}

// Engine runs the parse, classify, filter, dedupe pipeline over one
// folder's files.
type Engine struct {
	Filters Filters
	Dedupe  bool
}

// ProcessFolder parses every file, assigns records to groups by filename,
// applies the filters, and optionally removes duplicates across the whole
// folder. Files are processed in lexicographic order so group order (first
// appearance) is deterministic. A file that cannot be read is skipped with a
// warning; it never fails the folder.
func (e Engine) ProcessFolder(folder string, files []string) *Result {
	base := filepath.Base(folder)
	res := &Result{Folder: base}
	res.Stats.Files = len(files)

	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	// Groups are built over indexes into the flat list so that dedup can
	// re-derive member lists from the surviving rows.
	groupIdx := make(map[string]int)
	var members [][]int

	for _, path := range sorted {
		data, err := os.ReadFile(path)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipping %s: %v", filepath.Base(path), err))
			continue
		}
		recs, err := ris.Parse(bytes.NewReader(data), base)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipping %s: %v", filepath.Base(path), err))
			continue
		}

		class := Classify(filepath.Base(path))
		gi, ok := groupIdx[class.Key]
		if !ok {
			gi = len(res.Groups)
			groupIdx[class.Key] = gi
			res.Groups = append(res.Groups, Group{Key: class.Key, Kind: class.Kind})
			members = append(members, nil)
		}

		for _, rec := range recs {
			res.Stats.Parsed++
			if !e.Filters.Match(rec) {
				continue
			}
			res.Stats.Kept++
			members[gi] = append(members[gi], len(res.Flat))
			res.Flat = append(res.Flat, Row{Group: class.Key, Rec: rec})
		}
	}

	all := res.Flat
	keep := make([]bool, len(all))
	for i := range keep {
		keep[i] = true
	}
	if e.Dedupe {
		keep = dedupeMask(recordsOf(all))
	}

	for gi := range res.Groups {
		for _, fi := range members[gi] {
			if keep[fi] {
				res.Groups[gi].Members = append(res.Groups[gi].Members, all[fi].Rec)
			}
		}
	}

	flat := make([]Row, 0, len(all))
	for i, row := range all {
		if keep[i] {
			flat = append(flat, row)
		} else {
			res.Stats.DupesRemoved++
		}
	}
	res.Flat = flat

	return res
}

func recordsOf(rows []Row) []ris.Record {
	recs := make([]ris.Record, len(rows))
	for i, r := range rows {
		recs[i] = r.Rec
	}
	return recs
}
