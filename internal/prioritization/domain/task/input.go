package task

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Input is one raw task record as supplied by a caller. Numeric fields
// tolerate sloppy input: numbers may arrive as JSON strings, dependency
// lists may arrive as a comma-joined string, and non-numeric entries are
// coerced to a fallback rather than failing the decode.
type Input struct {
	ID             *int64     `json:"id,omitempty"`
	Title          string     `json:"title"`
	DueDate        string     `json:"due_date,omitempty"`
	EstimatedHours Hours      `json:"estimated_hours,omitempty"`
	Importance     Importance `json:"importance"`
	Status         string     `json:"status,omitempty"`
	Dependencies   DepList    `json:"dependencies,omitempty"`
}

// TrimmedTitle returns the title with surrounding whitespace removed.
func (in Input) TrimmedTitle() string {
	return strings.TrimSpace(in.Title)
}

// Hours is an estimated-hours value that decodes from a JSON number or a
// numeric string; anything else falls back to 0.
type Hours float64

// UnmarshalJSON implements json.Unmarshaler. It never fails: non-numeric
// input coerces to the zero fallback.
func (h *Hours) UnmarshalJSON(data []byte) error {
	*h = Hours(coerceFloat(data, 0))
	return nil
}

// Importance is a user weight that decodes from a JSON number or a numeric
// string; anything else falls back to 1. Range checking happens during
// normalization, not decoding.
type Importance int

// UnmarshalJSON implements json.Unmarshaler. It never fails: non-numeric
// input coerces to the fallback weight 1.
func (i *Importance) UnmarshalJSON(data []byte) error {
	*i = Importance(int(coerceFloat(data, 1)))
	return nil
}

// DepList is a dependency id set that decodes from a JSON array of numbers
// or numeric strings, or from a single comma-joined string ("1,2,3").
// Non-numeric entries are silently discarded.
type DepList []int64

// UnmarshalJSON implements json.Unmarshaler.
func (d *DepList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*d = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			*d = nil
			return nil
		}
		ids := make([]int64, 0, len(raw))
		for _, entry := range raw {
			if id, ok := coerceInt(entry); ok {
				ids = append(ids, id)
			}
		}
		*d = ids
		return nil
	}

	// Comma-joined string form.
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = nil
		return nil
	}
	ids := make([]int64, 0)
	for _, part := range strings.Split(s, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	*d = ids
	return nil
}

func coerceFloat(data []byte, fallback float64) float64 {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func coerceInt(data []byte) (int64, bool) {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
