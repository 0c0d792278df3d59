package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"recsel/internal/domain"
)

// Format identifies an output encoding for the final selection
type Format string

const (
	FormatIDs  Format = "ids"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
)

// ParseFormat maps a config or flag value to a Format.
// The empty string falls back to ids.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatIDs, nil
	case FormatIDs, FormatTSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want ids, tsv or json)", s)
	}
}

// Write renders the records to w in the given format
func Write(w io.Writer, records []domain.Record, format Format) error {
	switch format {
	case FormatIDs:
		return writeIDs(w, records)
	case FormatTSV:
		return writeTSV(w, records)
	case FormatJSON:
		return writeJSON(w, records)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeIDs(w io.Writer, records []domain.Record) error {
	for _, rec := range records {
		if _, err := fmt.Fprintln(w, rec.ID); err != nil {
			return err
		}
	}
	return nil
}

func writeTSV(w io.Writer, records []domain.Record) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", rec.ID, rec.Title, rec.Label); err != nil {
			return err
		}
	}
	return nil
}

type jsonRecord struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Label string `json:"label,omitempty"`
}

func writeJSON(w io.Writer, records []domain.Record) error {
	out := make([]jsonRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, jsonRecord{ID: rec.ID, Title: rec.Title, Label: rec.Label})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
