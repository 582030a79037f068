package report

import (
	"testing"

	"ris2xlsx/internal/ris"
)

func keptRecords(recs []ris.Record) []ris.Record {
	keep := dedupeMask(recs)
	var out []ris.Record
	for i, k := range keep {
		if k {
			out = append(out, recs[i])
		}
	}
	return out
}

func TestDedupe_DOIFirstWins(t *testing.T) {
	recs := []ris.Record{
		{Title: "From IEEE", DOI: "10.1/a"},
		{Title: "Same paper from Scopus", DOI: "10.1/A "}, // case/space-folded
		{Title: "Different paper", DOI: "10.1/b"},
	}
	kept := keptRecords(recs)
	if len(kept) != 2 {
		t.Fatalf("expected 2 records, got %d", len(kept))
	}
	if kept[0].Title != "From IEEE" {
		t.Errorf("first occurrence must win, got %q", kept[0].Title)
	}
}

func TestDedupe_FallbackKey(t *testing.T) {
	recs := []ris.Record{
		{Title: "Shared Title", Year: 2015, AuthorSurname: "Smith"},
		{Title: " shared title ", Year: 2015, AuthorSurname: "SMITH"},
		{Title: "Shared Title", Year: 2016, AuthorSurname: "Smith"}, // year differs
	}
	kept := keptRecords(recs)
	if len(kept) != 2 {
		t.Fatalf("expected 2 records, got %d", len(kept))
	}
}

func TestDedupe_DOIPrecedesFallback(t *testing.T) {
	// A record with a DOI never collides with a fallback-keyed record,
	// even when title/year/surname are identical.
	recs := []ris.Record{
		{Title: "T", Year: 2015, AuthorSurname: "S", DOI: "10.1/x"},
		{Title: "T", Year: 2015, AuthorSurname: "S"},
	}
	kept := keptRecords(recs)
	if len(kept) != 2 {
		t.Fatalf("DOI and fallback keys must not collide, got %d records", len(kept))
	}
}

func TestDedupe_AllEmptyFieldsCollide(t *testing.T) {
	// Known limitation: records with no DOI, title, year or surname share
	// the empty composite key and collapse to one.
	recs := []ris.Record{
		{Index: "IEEE Xplore"},
		{Index: "ScienceDirect"},
	}
	kept := keptRecords(recs)
	if len(kept) != 1 {
		t.Fatalf("expected the empty-key collision to keep 1 record, got %d", len(kept))
	}
	if kept[0].Index != "IEEE Xplore" {
		t.Errorf("first occurrence must win, got %q", kept[0].Index)
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	recs := []ris.Record{
		{DOI: "10.1/a"},
		{DOI: "10.1/a"},
		{Title: "T", Year: 2020, AuthorSurname: "S"},
		{Title: "T", Year: 2020, AuthorSurname: "S"},
	}
	once := keptRecords(recs)
	twice := keptRecords(once)
	if len(once) != len(twice) {
		t.Fatalf("dedupe not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("record %d changed on second pass", i)
		}
	}
}
