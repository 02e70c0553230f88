// Package enum provides fluent builders for declaring enumerations that the
// enumext generator enriches with derived metadata and helpers.
//
// A declaration names the enum, lists its variants in order (order is
// semantically load-bearing: it defines ordinal assignment), and optionally
// picks the integer type used for discriminant evaluation:
//
//	d := enum.New("TicketStatus").
//		IntType(enum.IntTypeU32).
//		Derive("Debug", "Clone", "PartialEq").
//		Variants(
//			enum.Variant("Open").Discriminant("1"),
//			enum.Variant("InDev"),
//			enum.Variant("InQA").Discriminant("1 << 4"),
//			enum.Variant("Closed"),
//		).
//		Descriptor()
//
// Payload-bearing variants are declared with Positional or Field, and are
// only legal in complex mode, where every variant must carry an explicit
// discriminant:
//
//	d := enum.New("Shape").
//		Complex().
//		IntType(enum.IntTypeU8).
//		Variants(
//			enum.Variant("Circle").Positional("f64").Discriminant("1"),
//			enum.Variant("Rect").Field("w", "f64").Field("h", "f64").Discriminant("2"),
//		).
//		Descriptor()
//
// Descriptors are plain data consumed by compiler/load and resolved by
// compiler/gen.
package enum
