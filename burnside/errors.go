package burnside

import "errors"

// ErrNotDivisible is returned (alongside the best-effort floor quotient)
// when the Burnside sum is not evenly divisible by the group order — an
// internal-consistency warning, not a fatal condition (spec §7 item 4).
var ErrNotDivisible = errors.New("burnside: sum not divisible by group order")
