// Package bits decodes and evaluates BITS transmissions, a compact binary
// packet protocol carried as hexadecimal text.
//
// # Overview
//
// A transmission is one top-level packet that may nest further packets to
// arbitrary depth. Every packet carries a 3-bit version and a 3-bit type id.
// Type id 4 marks a literal: an unsigned integer spread across 5-bit groups,
// each a continuation bit followed by a nibble. Every other type id marks an
// operator that applies a combinator (sum, product, min, max, greater-than,
// less-than, equal) to its sub-packets. An operator frames its sub-packets
// either by total bit length (15-bit field) or by count (11-bit field).
//
// # Decoding
//
// Decode parses a full transmission from hex text in one pass:
//
//	p, err := bits.Decode("C200B40A82")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding is all or nothing. Malformed input - a bad hex digit, a field or
// sub-packet running past the end of the stream, a sub-packet crossing a
// declared bit boundary, a comparison operator without exactly two children,
// or an operator with none - fails with one of this package's sentinel
// errors and produces no packet. DecodeBinary accepts the same transmissions
// as raw '0'/'1' text.
//
// # Evaluation
//
// A decoded Packet is immutable and self-contained. Two pure folds read it:
//
//	p.VersionSum() // sum of every version field in the tree
//	p.Eval()       // value of the expression the tree encodes
//
// Both rely on the arity guarantees enforced at parse time, so neither needs
// to handle an empty operator.
//
// Walk visits each packet in pre-order for custom traversals, and Fprint
// renders the tree for inspection.
package bits
