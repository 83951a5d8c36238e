// Package to provides generic helpers that name the target type of a
// conversion at the call site.
//
// Every helper forwards to an existing conversion and adds nothing of its
// own: no wrapping, no logging, no state.
//
//   - [To] and [TryTo] call a type's own [Into] and [TryInto] methods.
//   - [Num] is Go's built-in numeric conversion; [TryNum] is its
//     range-checked counterpart backed by [safemath].
//   - [Cast] converts dynamic values, using [safemath] for integers and
//     [cast] for everything else.
//   - [Assert] is the comma-ok type assertion.
//
// The target type always comes first, so the source type is inferred:
//
//	y := to.Num[uint16](x)
//	z, err := to.TryNum[uint8](y)
package to
