// Package numeric provides small predicates and helpers shared by the
// checked conversions in [go.onixlabs.io/x/cast].
//
// Floating-point and decimal values are considered integers when their
// remainder against one is exactly zero. Big-number helpers convert between
// float64, [*big.Int] and [decimal.Decimal] without silent truncation.
package numeric
