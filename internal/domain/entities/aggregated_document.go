package entities

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DocumentEntry is one file fetched into an AggregatedDocument.
type DocumentEntry struct {
	Path    string
	Content string
}

// AggregatedDocument concatenates repository files, in listing order, into one annotated text.
// Its rendered length never exceeds MaxChars (counted in Unicode code points).
type AggregatedDocument struct {
	Reference RepositoryReference
	Entries   []DocumentEntry
	MaxChars  int
}

// NewAggregatedDocument creates an empty document capped at maxChars; zero or less disables the cap.
func NewAggregatedDocument(ref RepositoryReference, maxChars int) *AggregatedDocument {
	return &AggregatedDocument{Reference: ref, MaxChars: maxChars}
}

// Append adds a file at the end of the document.
func (d *AggregatedDocument) Append(path, content string) {
	d.Entries = append(d.Entries, DocumentEntry{Path: path, Content: content})
}

// Untruncated renders every entry without applying the cap.
func (d *AggregatedDocument) Untruncated() string {
	var builder strings.Builder
	for _, entry := range d.Entries {
		_, _ = fmt.Fprintf(&builder, "===== FILE: %s =====\n%s\n\n", entry.Path, entry.Content)
	}
	return builder.String()
}

// Text renders the document, cut to exactly the first MaxChars characters when longer.
func (d *AggregatedDocument) Text() string {
	return TruncateChars(d.Untruncated(), d.MaxChars)
}

// Truncated reports whether Text drops part of the rendered entries.
func (d *AggregatedDocument) Truncated() bool {
	return d.MaxChars > 0 && utf8.RuneCountInString(d.Untruncated()) > d.MaxChars
}

// TruncateChars returns the first limit code points of text, or text itself when it is not longer.
// No attempt is made to cut at a file boundary.
func TruncateChars(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}

	count := 0
	for idx := range text {
		if count == limit {
			return text[:idx]
		}
		count++
	}
	return text
}
