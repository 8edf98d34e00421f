// Package decimal implements non-negative decimal string arithmetic
// sufficient for the Burnside aggregator and ZDD cardinality: addition of
// two decimal strings, and division of a decimal string by a small
// positive integer divisor. It intentionally avoids a big-integer
// dependency (spec.md §9: "use decimal strings ... to avoid a bignum
// library dependency in the aggregator"); everything here is string/byte
// manipulation over base-10 digits, most-significant digit first.
//
// Values are always canonical: no leading zeros (except the literal "0"),
// no sign, no exponent.
package decimal
