package controller

import (
	"regexp"
	"strings"
)

// entryMarker starts every dated entry of a record, e.g. "2024-01-02\t08：30\t".
// The colon is the full-width one.
var entryMarker = regexp.MustCompile(`\d{4}-\d{2}-\d{2}\t\d{2}：\d{2}\t`)

var whitespace = regexp.MustCompile(`[\t\n\v\f\r ]+`)

// SplitEntries cuts input in front of every dated entry. Text before the first
// entry forms its own part. An empty input yields a single empty part.
func SplitEntries(input string) []string {
	var parts []string
	last := 0
	for _, loc := range entryMarker.FindAllStringIndex(input, -1) {
		if loc[0] > last {
			parts = append(parts, input[last:loc[0]])
		}
		last = loc[0]
	}
	if last < len(input) || len(parts) == 0 {
		parts = append(parts, input[last:])
	}
	return parts
}

// SplitIntoSegments groups the dated entries of input, size entries per segment.
// The last segment may hold fewer.
func SplitIntoSegments(input string, size int) []string {
	if size < 1 {
		size = 1
	}

	parts := SplitEntries(input)
	segments := make([]string, 0, (len(parts)+size-1)/size)
	for start := 0; start < len(parts); start += size {
		end := min(start+size, len(parts))
		segments = append(segments, strings.Join(parts[start:end], ""))
	}
	return segments
}

// RemoveSections drops every section starting at marker up to, not including,
// the next dated entry. A section with no dated entry after it is kept.
func RemoveSections(input, marker string) string {
	if marker == "" {
		return input
	}

	out := input
	from := 0
	for {
		idx := strings.Index(out[from:], marker)
		if idx < 0 {
			return out
		}
		idx += from

		tail := idx + len(marker)
		loc := entryMarker.FindStringIndex(out[tail:])
		if loc == nil {
			return out
		}
		out = out[:idx] + out[tail+loc[0]:]
		from = idx
	}
}

// RemoveAllWhitespace strips ASCII whitespace.
func RemoveAllWhitespace(input string) string {
	return whitespace.ReplaceAllString(input, "")
}
