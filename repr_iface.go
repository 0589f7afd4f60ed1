package derex

/*
repr_iface.go declares the two-operation representation-registry
contract this package consumes from its "external collaborator" (spec
.md §6), plus the Formatter function type a registry may hand back for
a given tag. The core never constructs or mutates a registry; see the
sibling "repr" and "formatters" packages for concrete implementations.
*/

// Formatter converts the raw contents bytes of one primitive tag into
// printable text, or reports that it could not. A failing Formatter
// is non-fatal: the decoder logs a warning and falls back to a hex
// dump (spec.md §4.4, §7.4).
type Formatter func(raw []byte) (string, error)

// RepresentationRegistry maps (class, number) pairs to a symbolic
// name and, optionally, a value formatter. Implementations must be
// side-effect-free and safe to share read-only across Decoder/Encoder
// instances (spec.md §6).
type RepresentationRegistry interface {
	// NameOf returns the symbolic name registered for (class,
	// number), and whether one was found. When ok is false, callers
	// fall back to the "class-letter + decimal" default form.
	NameOf(class Class, number uint32) (name string, ok bool)

	// FormatterOf returns the value formatter registered for
	// (class, number), if any.
	FormatterOf(class Class, number uint32) (Formatter, bool)
}
