/*
Package derex implements a bidirectional, chunk-resumable codec between
ASN.1 DER-encoded octets (ITU-T X.690) and a human-readable S-expression
textual form.

The package is organized around a pair of incremental state machines —
[Decoder] and [Encoder] — built on an iteratee-style streaming
discipline: both accept arbitrarily small byte chunks, suspend when
they run out of input, and resume exactly where they left off. Neither
type performs I/O of its own; callers (see the sibling "source" package
for a file-backed driver) push chunks in and drain output as it is
produced.

Everything this package does NOT do is deliberate: it does not open
files, does not choose a block size, does not offer a command-line
surface, and does not know how to render the contents of any
particular tag beyond a hex dump. Those concerns belong to the "repr",
"formatters", "source", and "cmd/derex" packages, which drive a
[Decoder] or [Encoder] through its [Stream]-based Step method and
supply it a [RepresentationRegistry].
*/
package derex
