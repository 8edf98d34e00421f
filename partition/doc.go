// Package partition implements the optional memory-partitioned driver of
// spec §4.8: splitting the spanning-tree enumeration into 2^k disjoint
// sub-problems keyed by the bit pattern fixed on the first k edges,
// trading peak ZDD memory for repeated, smaller builds.
package partition
