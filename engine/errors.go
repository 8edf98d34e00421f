package engine

import "errors"

// ErrAutomorphismsWithoutGroupOrder is returned when WithAutomorphisms
// was applied with a non-positive group order.
var ErrAutomorphismsWithoutGroupOrder = errors.New("engine: automorphisms enabled with non-positive group order")
