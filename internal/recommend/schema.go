// Package recommend handles untrusted recommendation payloads: the flat
// place list produced by the destination search flow and the full
// {dailyPlan} object produced by the schedule generator. Both are parsed,
// validated and normalized into domain values before the itinerary store
// ever sees them.
package recommend

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Schema is the top-level JSON structure of a recommendation payload.
// Exactly one of DailyPlan (schedule-recommendation path) or Places
// (single-place-add path) is expected.
type Schema struct {
	DailyPlan map[string][]PlaceImport `json:"dailyPlan,omitempty"`
	Places    []PlaceImport            `json:"places,omitempty"`
}

// PlaceImport defines a place-like object in the payload. All fields are
// optional; normalization fills the gaps.
type PlaceImport struct {
	ID       FlexID   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Category string   `json:"category,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Date     string   `json:"date,omitempty"`
}

// FlexID accepts identifiers that arrive as either JSON strings or numbers;
// the web client historically used epoch-millisecond numbers as temporary
// place ids.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

// Parse reads and decodes a recommendation payload.
func Parse(r io.Reader) (*Schema, error) {
	var schema Schema
	dec := json.NewDecoder(r)
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing recommendation payload: %w", err)
	}
	return &schema, nil
}

// ParseFile reads and decodes a recommendation payload from a file.
func ParseFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recommendation file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
