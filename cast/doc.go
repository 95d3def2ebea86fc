// Package cast provides checked conversions between booleans, fixed-width
// integers, floating-point numbers, characters, strings, arbitrary-precision
// numbers and UUIDs.
//
// Every conversion either yields a value that represents the input exactly or
// fails with a [*ConversionError]. Integer narrowing goes through [safemath]
// so out-of-range values report [ErrNumericOverflow] instead of wrapping, and
// floating-point or decimal inputs with a fractional part report
// [ErrLossOfPrecision] instead of truncating.
//
// One stateless converter exists per target type (see [For]); [To] and
// [ToMust] are the generic shortcuts:
//
//	n, err := cast.To[int8](int64(42))     // 42, nil
//	_, err = cast.To[int8](int16(32767))   // ErrNumericOverflow
//	_, err = cast.To[*big.Int](123.456)    // ErrLossOfPrecision
//
// Inputs are classified into a closed set of kinds by [ValueOf]. Because rune
// is an alias of int32, characters must be passed as [Char].
package cast
