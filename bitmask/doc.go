// Package bitmask implements fixed-width unsigned bit vectors used by the
// ZDD subsetting filters to track per-MOPE and per-orbit residual state.
//
// A Mask is a total, allocation-light algebra over B bits: OrAssign,
// AndAssign, Not, And, Equal, IsZero, and Bit(i) (constructing the mask
// with exactly bit i set). All operations are total — out-of-range Bit
// indices yield the zero mask rather than panicking or erroring.
//
// Two implementations back the Mask interface:
//
//   - word64  — a bare uint64, used whenever the caller's bit-width fits
//     in a single machine word. No allocation, no indirection.
//   - wide    — a []uint64 limb slice sized to ceil(width/64), used
//     otherwise. Limb-wise OR/AND/NOT loops mirror the classic
//     bits-and-blooms/BitSet approach of operating word-at-a-time.
//
// NewFactory selects the narrowest implementation that can hold the
// caller's bit count, dispatching over the reference width cases
// (64, 128, 192, 256, 320, 384, 448); widths beyond 448 report
// ErrUnsupportedWidth so the caller can see exactly how large a width is
// needed.
package bitmask
