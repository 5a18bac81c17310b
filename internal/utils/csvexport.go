package utils

import "strings"

// ExportCSV joins headers and rows into CSV text. Quoting is minimal: a field
// is wrapped in quotes only when it contains a comma. Embedded quotes and
// newlines are not escaped; callers exporting such data get what they get.
func ExportCSV(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(joinCSVRow(headers))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(joinCSVRow(row))
	}
	return b.String()
}

func joinCSVRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		if strings.Contains(f, ",") {
			quoted[i] = `"` + f + `"`
		} else {
			quoted[i] = f
		}
	}
	return strings.Join(quoted, ",")
}
