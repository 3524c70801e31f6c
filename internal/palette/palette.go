// Package palette assigns display colors to person identifiers. Assignment
// is deterministic: the same identifier always maps to the same color
// unless the query service supplies an explicit override table.
package palette

import (
	"sort"
	"strconv"
	"strings"
)

// NeutralGray is used for samples with no person identifier. It is fixed
// and independent of the palette so anonymous markers never collide with a
// person's assigned color.
const NeutralGray = "#6B7280"

// Colors is the default marker palette, indexed by 0-based person index
// with modulo wraparound.
var Colors = []string{
	"#3B82F6", // blue
	"#EF4444", // red
	"#10B981", // green
	"#F59E0B", // amber
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#14B8A6", // teal
	"#F97316", // orange
	"#6366F1", // indigo
	"#84CC16", // lime
}

// queryServiceColors mirrors the 5-color cycle the query service uses when
// it builds its own person_colors table for multi-person results.
var queryServiceColors = []string{"#3B82F6", "#EF4444", "#10B981", "#F59E0B", "#8B5CF6"}

// ForPerson returns the display color for a person. An entry in overrides
// wins verbatim. Otherwise identifiers of the form "personN" select
// Colors[(N-1) mod len(Colors)]; anything unparseable gets index 0, and an
// absent identifier gets NeutralGray.
func ForPerson(person string, overrides map[string]string) string {
	if c, ok := overrides[person]; ok {
		return c
	}
	if person == "" {
		return NeutralGray
	}
	return Colors[indexForPerson(person)%len(Colors)]
}

// indexForPerson extracts a 0-based index from a "personN" identifier,
// defaulting to 0 when no 1-based numeric suffix is parseable.
func indexForPerson(person string) int {
	suffix := strings.TrimPrefix(person, "person")
	if suffix == person {
		return 0
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}

// Assign builds the person→color table the query service attaches to
// multi-person results: persons sorted, colors from the 5-color cycle.
// Returns nil for fewer than two persons.
func Assign(persons []string) map[string]string {
	if len(persons) < 2 {
		return nil
	}

	sorted := make([]string, len(persons))
	copy(sorted, persons)
	sort.Strings(sorted)

	table := make(map[string]string, len(sorted))
	for i, p := range sorted {
		table[p] = queryServiceColors[i%len(queryServiceColors)]
	}
	return table
}
