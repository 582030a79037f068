package ris

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// entry holds the raw tag values of one RIS record. Tags like AU repeat, so
// every tag maps to the ordered list of its values.
type entry map[string][]string

// Matches "TI  - value" and looser vendor spacings like "DO - value".
var tagLineRe = regexp.MustCompile(`^([A-Z0-9]{2})\s*-\s*(.*)$`)

// Parse reads RIS text and returns one Record per ER-terminated entry.
// fallbackIndex labels records whose URL and DOI identify no known provider
// (typically the source folder name).
//
// The parser is deliberately forgiving: unknown tags are kept, lines that
// don't look like tags are treated as continuations of the previous value,
// and an entry with no recognizable fields still yields a Record.
func Parse(r io.Reader, fallbackIndex string) ([]Record, error) {
	entries, err := parseEntries(r)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, recordFromEntry(e, fallbackIndex))
	}
	return records, nil
}

func parseEntries(r io.Reader) ([]entry, error) {
	var entries []entry
	cur := entry{}
	lastTag := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")

		m := tagLineRe.FindStringSubmatch(line)
		if m == nil {
			// Wrapped value: exporters fold long abstracts/titles onto
			// continuation lines. Anything else is noise and is skipped.
			if lastTag != "" && strings.TrimSpace(line) != "" {
				vals := cur[lastTag]
				if len(vals) > 0 {
					vals[len(vals)-1] = strings.TrimSpace(vals[len(vals)-1] + " " + strings.TrimSpace(line))
				}
			}
			continue
		}

		tag, val := m[1], strings.TrimSpace(m[2])
		lastTag = tag

		if tag == "ER" {
			if len(cur) > 0 {
				entries = append(entries, cur)
			}
			cur = entry{}
			lastTag = ""
			continue
		}

		cur[tag] = append(cur[tag], val)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func recordFromEntry(e entry, fallbackIndex string) Record {
	author := firstValue(e, authorTags)
	given, surname := SplitAuthor(author)

	return Record{
		Title:         firstValue(e, titleTags),
		Year:          yearFromEntry(e),
		Index:         indexLabel(e, fallbackIndex),
		DOI:           CleanDOI(firstValue(e, doiTags)),
		AuthorName:    given,
		AuthorSurname: surname,
	}
}

// firstValue returns the first non-empty value across tags, honoring tag
// precedence first and value order within a tag second.
func firstValue(e entry, tags []string) string {
	for _, tag := range tags {
		for _, v := range e[tag] {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// yearFromEntry extracts the first plausible 4-digit year from the date
// tags. Returns 0 when no tag carries one.
func yearFromEntry(e entry) int {
	for _, tag := range yearTags {
		vals := e[tag]
		if len(vals) == 0 {
			continue
		}
		v := strings.TrimSpace(vals[0])
		if v == "" {
			continue
		}
		if m := yearRe.FindString(v); m != "" {
			if y, err := strconv.Atoi(m); err == nil {
				return y
			}
		}
	}
	return 0
}
