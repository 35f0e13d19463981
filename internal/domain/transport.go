package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Transport legs are semi-structured descriptor strings in the form
//
//	MODE | ORIGIN → DEST | HHMM → HHMM | COST원
//
// produced by the transit search backend. Parsing degrades gracefully: the
// display and cost queries are decoupled, never fail, and fall back to
// pass-through or zero for anything malformed.

var clockRangePattern = regexp.MustCompile(`(\d{4})\s*→\s*(\d{4})`)

// TransportInfo is the display view of a transport leg descriptor.
type TransportInfo struct {
	Mode string
	Time string
}

// ParseTransportInfo extracts the mode and a formatted "HH:MM - HH:MM" time
// range from a leg descriptor. Inputs that do not match the descriptor
// grammar come back as {Mode: raw, Time: ""} so they can still be displayed.
func ParseTransportInfo(raw string) TransportInfo {
	parts := splitDescriptor(raw)
	if len(parts) < 3 {
		return TransportInfo{Mode: raw}
	}
	m := clockRangePattern.FindStringSubmatch(parts[2])
	if m == nil {
		return TransportInfo{Mode: raw}
	}
	return TransportInfo{
		Mode: parts[0],
		Time: formatClock(m[1]) + " - " + formatClock(m[2]),
	}
}

// ParseTransportCost extracts the integer cost from a leg descriptor.
// Missing segments, a missing currency marker value or a non-numeric cost
// all yield 0.
func ParseTransportCost(raw string) int {
	parts := splitDescriptor(raw)
	if len(parts) < 4 {
		return 0
	}
	costPart := strings.TrimSpace(strings.TrimSuffix(parts[3], "원"))
	n, err := strconv.Atoi(costPart)
	if err != nil {
		return 0
	}
	return n
}

// FormatTransportLeg composes the canonical leg descriptor from typed fields.
// dep and arr are 4-digit 24h clock strings (e.g. "0630").
func FormatTransportLeg(mode, origin, dest, dep, arr string, cost int) string {
	return fmt.Sprintf("%s | %s → %s | %s → %s | %d원", mode, origin, dest, dep, arr, cost)
}

func splitDescriptor(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// formatClock reformats a 4-digit clock token as HH:MM. Tokens of any other
// length pass through unchanged.
func formatClock(s string) string {
	if len(s) != 4 {
		return s
	}
	return s[:2] + ":" + s[2:]
}
