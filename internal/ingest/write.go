package ingest

import "strings"

// WriteTable serializes named-field rows back into the delimited format
// Parse reads: fields containing a comma, quote or newline are quoted, and
// embedded quotes are doubled. Missing fields serialize as empty.
func WriteTable(header []string, rows []Row) string {
	var b strings.Builder

	writeLine := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(f))
		}
		b.WriteByte('\n')
	}

	writeLine(header)
	for _, row := range rows {
		fields := make([]string, len(header))
		for i, name := range header {
			fields[i] = row[name]
		}
		writeLine(fields)
	}

	return b.String()
}

func escapeField(f string) string {
	if !strings.ContainsAny(f, ",\"\n") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}
