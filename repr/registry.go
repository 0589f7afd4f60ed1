// Package repr implements the representation registry the derex core
// consumes through its RepresentationRegistry interface: a lookup from
// (class, number) tag identity to a human-friendly name and, for
// primitive tags, a value formatter.
//
// Grounded in repr.c's hash-table-of-Repr-structs design, with the
// dlopen-based plugin loading replaced by a compile-time map of named
// formatters supplied by the caller — Go programs link in the
// formatters they need rather than dlopen-ing a codec shared object
// at runtime.
package repr

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dereks/derex"
)

// entry is one registered tag representation.
type entry struct {
	name      string
	formatter derex.Formatter
}

func key(class derex.Class, number uint32) uint64 {
	return uint64(class)<<32 | uint64(number)
}

// Registry is an in-memory, read-only-after-build implementation of
// derex.RepresentationRegistry. The zero value is not usable; build
// one with New or NewDefault.
type Registry struct {
	entries map[uint64]entry
}

// New returns an empty Registry. Use Register or LoadConfig to
// populate it.
func New() *Registry {
	return &Registry{entries: make(map[uint64]entry)}
}

// Register associates name (and optionally a formatter) with the tag
// identified by (class, number). A later call for the same tag
// overwrites the earlier one.
func (r *Registry) Register(class derex.Class, number uint32, name string, fmtr derex.Formatter) {
	r.entries[key(class, number)] = entry{name: name, formatter: fmtr}
}

// NameOf implements derex.RepresentationRegistry.
func (r *Registry) NameOf(class derex.Class, number uint32) (string, bool) {
	e, ok := r.entries[key(class, number)]
	if !ok || e.name == "" {
		return "", false
	}
	return e.name, true
}

// FormatterOf implements derex.RepresentationRegistry.
func (r *Registry) FormatterOf(class derex.Class, number uint32) (derex.Formatter, bool) {
	e, ok := r.entries[key(class, number)]
	if !ok || e.formatter == nil {
		return nil, false
	}
	return e.formatter, true
}

// Names returns every symbolic name this Registry has registered,
// sorted and de-duplicated (two different tags may share one name) —
// used by the CLI's --list-formats diagnostic.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range maps.Values(r.entries) {
		if e.name != "" {
			names = append(names, e.name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
