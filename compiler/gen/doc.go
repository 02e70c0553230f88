// Package gen is the metadata resolution and validation engine of enumext.
//
// It walks a declared variant list exactly once, establishes per-variant
// identity (ordinal, evaluated discriminant, name-derived strings), enforces
// the mode-dependent legality rules, and assembles the resolved metadata
// that emission dialects consume. Resolution either completes or fails with
// a single enumext.ParseError or enumext.VariantError; partial metadata is
// never returned.
//
// All internal bookkeeping is order-preserving: lookup tables are built from
// declaration order, never from map iteration, so identical input yields
// byte-identical generated output.
package gen
