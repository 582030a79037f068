package ris

import (
	"net/url"
	"strings"
	"unicode"
)

// provider maps a host fragment to the display name of the database behind
// it. Checked in order so the list stays deterministic.
var providers = []struct {
	host string
	name string
}{
	{"ieeexplore.ieee.org", "IEEE Xplore"},
	{"sciencedirect.com", "ScienceDirect"},
	{"webofscience.com", "Web of Science"},
	{"link.springer.com", "SpringerLink"},
	{"springer.com", "SpringerLink"},
	{"onlinelibrary.wiley.com", "Wiley Online Library"},
	{"wiley.com", "Wiley Online Library"},
	{"pubmed.ncbi.nlm.nih.gov", "PubMed"},
	{"dl.acm.org", "ACM Digital Library"},
	{"acm.org", "ACM Digital Library"},
	{"tandfonline.com", "Taylor & Francis"},
	{"nature.com", "Nature"},
}

// DOI registrant prefixes of the big publishers. Useful when UR is missing
// or is just a doi.org link.
var doiPrefixes = []struct {
	prefix string
	name   string
}{
	{"10.1109", "IEEE Xplore"},
	{"10.1016", "ScienceDirect"},
	{"10.1007", "SpringerLink"},
	{"10.1002", "Wiley Online Library"},
	{"10.1145", "ACM Digital Library"},
}

// indexLabel derives the Index column for an entry: URL host first, DOI
// registrant prefix second, cleaned fallback name last.
func indexLabel(e entry, fallback string) string {
	if ur := firstValue(e, []string{"UR"}); ur != "" {
		if u, err := url.Parse(ur); err == nil {
			host := strings.ToLower(u.Host)
			for _, p := range providers {
				if strings.Contains(host, p.host) {
					return p.name
				}
			}
		}
	}

	if doi := strings.ToLower(CleanDOI(firstValue(e, doiTags))); doi != "" {
		for _, p := range doiPrefixes {
			if strings.HasPrefix(doi, p.prefix) {
				return p.name
			}
		}
	}

	return FallbackIndex(fallback)
}

// FallbackIndex turns a folder name like "ieee_exports" into a readable
// Index label. Returns "Unknown Source" when nothing usable remains.
func FallbackIndex(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	fields := strings.Fields(name)
	kept := fields[:0]
	for _, f := range fields {
		if strings.EqualFold(f, "exports") {
			continue
		}
		kept = append(kept, titleWord(f))
	}
	if len(kept) == 0 {
		return "Unknown Source"
	}
	return strings.Join(kept, " ")
}

func titleWord(w string) string {
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
