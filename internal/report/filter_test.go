package report

import (
	"testing"

	"ris2xlsx/internal/ris"
)

func TestFilters_ZeroValuePassesEverything(t *testing.T) {
	var f Filters
	if !f.Match(ris.Record{}) {
		t.Error("zero-value filters must pass an empty record")
	}
	if !f.Match(ris.Record{Title: "anything", Year: 1875}) {
		t.Error("zero-value filters must pass any record")
	}
}

func TestFilters_YearRange(t *testing.T) {
	f := Filters{YearSet: true, MinYear: 2007, MaxYear: 2017}

	cases := []struct {
		year int
		want bool
	}{
		{2006, false},
		{2007, true},
		{2012, true},
		{2017, true},
		{2018, false},
	}
	for _, c := range cases {
		rec := ris.Record{Year: c.year}
		if got := f.Match(rec); got != c.want {
			t.Errorf("year %d: expected %v, got %v", c.year, c.want, got)
		}
	}
}

func TestFilters_AbsentYearExcluded(t *testing.T) {
	f := Filters{YearSet: true, MinYear: 2007, MaxYear: 2017}
	if f.Match(ris.Record{Title: "no year tag"}) {
		t.Error("record without a year must not pass a year filter")
	}
}

func TestFilters_KeywordsRequireAll(t *testing.T) {
	f := Filters{Keywords: []string{"MTHFR", "HPV"}}

	if f.Match(ris.Record{Title: "MTHFR polymorphisms in cancer"}) {
		t.Error("title with only one keyword must be excluded")
	}
	if !f.Match(ris.Record{Title: "mthfr variants and hpv persistence"}) {
		t.Error("title with both keywords (any case) must be included")
	}
	if f.Match(ris.Record{Title: ""}) {
		t.Error("empty title must be excluded when keywords are required")
	}
}

func TestFilters_Compose(t *testing.T) {
	f := Filters{YearSet: true, MinYear: 2010, MaxYear: 2020, Keywords: []string{"hpv"}}

	if !f.Match(ris.Record{Title: "HPV screening", Year: 2015}) {
		t.Error("record matching both filters must pass")
	}
	if f.Match(ris.Record{Title: "HPV screening", Year: 2005}) {
		t.Error("keyword match must not rescue a year miss")
	}
	if f.Match(ris.Record{Title: "Influenza", Year: 2015}) {
		t.Error("year match must not rescue a keyword miss")
	}
}

func TestParseYearRange(t *testing.T) {
	lo, hi, err := ParseYearRange("2007-2017")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo != 2007 || hi != 2017 {
		t.Errorf("expected (2007, 2017), got (%d, %d)", lo, hi)
	}

	// Reversed bounds swap rather than fail.
	lo, hi, err = ParseYearRange(" 2017 - 2007 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo != 2007 || hi != 2017 {
		t.Errorf("expected swapped (2007, 2017), got (%d, %d)", lo, hi)
	}

	for _, bad := range []string{"", "2007", "2007-", "last decade", "07-17"} {
		if _, _, err := ParseYearRange(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseKeywords(t *testing.T) {
	got := ParseKeywords(" MTHFR , HPV ,, ")
	if len(got) != 2 || got[0] != "MTHFR" || got[1] != "HPV" {
		t.Errorf("expected [MTHFR HPV], got %v", got)
	}
	if got := ParseKeywords(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
