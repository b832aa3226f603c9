// Package intrinsics keeps the fixed table of well-known standard
// operations whose effect behavior is not expressed through the
// annotation mechanism: numeric and text parsing, first/last/single
// access on ordered collections, generic decode operations and the
// like. The table maps a library member to bare effect type names, the
// host resolves the names into concrete types at lookup time.
//
// The table is external configuration: it is injected into the
// analyzer, swappable without touching the algorithm, and can be
// loaded from a versioned YAML document.
package intrinsics

import (
	"maps"
	"slices"
)

// Key addresses a single table entry.
type Key struct {
	// Library is the host identity of the library declaring the member.
	Library string

	// Member is the qualified member name: "List.first" for members of
	// a type, a plain "parse" for free routines.
	Member string
}

// Table maps well-known standard operations to effect type names they
// can produce. Immutable once built.
type Table struct {
	entries map[Key][]string
}

// New builds a table over the given entries. The entries are copied,
// later changes of the argument do not affect the table.
func New(entries map[Key][]string) Table {
	return Table{entries: cloneEntries(entries)}
}

// Lookup exits effect type names known for the member of the library.
// An entry with an empty name list is a present entry still: it means
// the member is known to produce nothing.
func (t Table) Lookup(library, member string) ([]string, bool) {
	names, ok := t.entries[Key{Library: library, Member: member}]
	if !ok {
		return nil, false
	}

	return slices.Clone(names), true
}

// Merge layers override entries over t and exits the combined table.
// Overriding entries win on key clashes, both source tables stay
// intact.
func (t Table) Merge(override Table) Table {
	merged := maps.Clone(t.entries)
	if merged == nil {
		merged = make(map[Key][]string)
	}

	maps.Copy(merged, override.entries)

	return Table{entries: merged}
}

// Len exits the number of entries.
func (t Table) Len() int { return len(t.entries) }

func cloneEntries(entries map[Key][]string) map[Key][]string {
	out := make(map[Key][]string, len(entries))
	for k, v := range entries {
		out[k] = slices.Clone(v)
	}

	return out
}
