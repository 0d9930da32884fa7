package valueobjects

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed legacy_status.yaml
var legacyStatusYAML []byte

var legacyTable = mustLoadLegacyTable(legacyStatusYAML)

func mustLoadLegacyTable(data []byte) map[string]TicketStatus {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		panic(fmt.Sprintf("legacy status table: %v", err))
	}

	table := make(map[string]TicketStatus, len(raw))
	for k, v := range raw {
		ts := TicketStatus(v)
		if !ts.IsValid() {
			panic(fmt.Sprintf("legacy status table: %q maps to unknown status %q", k, v))
		}
		table[normalizeKey(k)] = ts
	}
	return table
}

// normalizeKey lowercases s, strips diacritics and collapses whitespace.
func normalizeKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// FromStored maps a persisted status onto the closed set. Values missing
// from the table fall back to substring matching ("concl" before "pend")
// and finally to StatusOpen; exact reports whether the value was a label
// or a table entry.
func FromStored(s string) (ts TicketStatus, exact bool) {
	if parsed, err := ParseTicketStatus(s); err == nil {
		return parsed, true
	}

	key := normalizeKey(s)
	switch {
	case strings.Contains(key, "concl"):
		return StatusCompleted, false
	case strings.Contains(key, "pend"):
		return StatusPending, false
	default:
		return StatusOpen, false
	}
}
