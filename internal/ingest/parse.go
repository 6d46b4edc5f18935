// Package ingest parses and serializes the delimited-text task format.
// Parsing is deliberately tolerant: one malformed line produces one
// warning and is skipped, it never aborts the rest of the file.
package ingest

import (
	"fmt"
	"strings"
)

// Row is one data line keyed by the (trimmed) header names.
type Row map[string]string

// RowError reports a single unusable line. Line numbers are 1-based and
// count the header line.
type RowError struct {
	Line    int
	Message string
}

func (e RowError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result is the outcome of a parse: the rows that survived plus every
// per-line error encountered along the way.
type Result struct {
	Header []string
	Rows   []Row
	Errors []RowError
}

// Parse splits delimited text into header-keyed rows. A file with fewer
// than two lines (header plus at least one data row) yields no rows and a
// single error. Lines whose field count does not match the header width are
// skipped and reported, not fatal.
func Parse(text string) Result {
	var res Result

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	// Drop fully blank lines (typically a trailing newline) before the
	// header/data minimum is checked.
	kept := lines[:0]
	for _, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			kept = append(kept, ln)
		}
	}
	lines = kept

	if len(lines) < 2 {
		res.Errors = append(res.Errors, RowError{Message: "file must contain a header row and at least one data row"})
		return res
	}

	header := splitLine(lines[0])
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	res.Header = header

	for i, line := range lines[1:] {
		fields := splitLine(line)
		if len(fields) != len(header) {
			res.Errors = append(res.Errors, RowError{
				Line:    i + 2,
				Message: fmt.Sprintf("expected %d fields, got %d", len(header), len(fields)),
			})
			continue
		}
		row := make(Row, len(header))
		for j, name := range header {
			row[name] = fields[j]
		}
		res.Rows = append(res.Rows, row)
	}

	return res
}

// splitLine scans one line into fields. Outside quotes a comma ends the
// field; a quote opens quoted mode where `""` is a literal quote. A
// trailing comma yields a trailing empty field.
func splitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					cur.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteByte(c)
			}
		case c == '"':
			inQuotes = true
		case c == ',':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())

	return fields
}
