// Package seq defines the PCL escape-sequence classification tables.
//
// Every PCL escape sequence is identified by up to three bytes and an
// optional numeric value:
//
//	<Esc> & l 26 A
//	      | |  |  +-- termination character (identity byte 3)
//	      | |  +----- value field
//	      | +-------- group character (identity byte 2, may be absent)
//	      +---------- parameterised character (identity byte 1)
//
// Two-byte sequences such as <Esc>E use the second byte as identity byte 1
// and leave the group and termination characters zero.
//
// # Registry
//
// A Registry maps a Key to an Entry. Each sequence family has a root entry
// keyed without a value; families whose values are enumerable additionally
// carry one entry per known value. The registry is populated once by Build
// and is immutable afterwards, so a single registry can be shared between
// any number of classification sessions.
//
// # Parameter kinds
//
// Root entries declare how their value field behaves:
//   - Generic: the family has discrete values; the root is the fallback for
//     values that have no entry of their own
//   - Continuous: the value is an arbitrary operand (a count, a distance)
//   - Various: valid values are printer dependent and not enumerated
//
// # Expansion
//
// Some families (page size, symbol set, typeface, orientation, logical
// operation, text parsing method) take their discrete values from external
// reference tables. These are injected by ExpandFamily from a Provider.
package seq
