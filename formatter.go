package docmeta

import (
	"encoding/json"
	"strings"
)

// Ensure JSONFormatter implements Formatter at compile time.
var _ Formatter = (*JSONFormatter)(nil)

// JSONFormatter renders metadata as indented JSON.
// Absent fields are written as null so every field is present.
type JSONFormatter struct{}

// Format renders m as JSON followed by a newline.
func (f *JSONFormatter) Format(m *Metadata) ([]byte, error) {
	if m == nil {
		return nil, Errorf(EINVALID, "metadata required")
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// FormatRecords formats records as one summary line each.
// Uses the page title if available, falls back to "(untitled)".
func FormatRecords(recs []*Record) string {
	if len(recs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(recs))
	for _, rec := range recs {
		title := ""
		if rec.Metadata != nil {
			title = rec.Metadata.Title
		}
		if title == "" {
			title = "(untitled)"
		}
		lines = append(lines, rec.ID+"  "+rec.Source+"  "+title)
	}

	return strings.Join(lines, "\n")
}
