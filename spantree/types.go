package spantree

import (
	"fmt"
	"strings"
)

// sentinel component values. A non-negative value is the representative
// vertex ID of the slot's current component.
const (
	uninitialized = -2
	retired       = -1
)

// FrontierData is one path's component-representative array, one entry
// per frontier slot. It implements zdd.Keyer so Build/Subset can merge
// paths whose frontier state is identical.
type FrontierData struct {
	comp []int
}

func newFrontierData(width int) FrontierData {
	comp := make([]int, width)
	for i := range comp {
		comp[i] = uninitialized
	}

	return FrontierData{comp: comp}
}

// clone returns an independent copy so mutating one path's state never
// affects another path sharing the same pre-transition FrontierData.
func (f FrontierData) clone() FrontierData {
	comp := make([]int, len(f.comp))
	copy(comp, f.comp)

	return FrontierData{comp: comp}
}

// Key renders comp verbatim: two FrontierData values are interchangeable
// for every future transition exactly when their slot arrays match
// entry-for-entry, since every subsequent Step A/B/C/D decision reads
// only comp[slot(x)] for the vertices the manager will hand it.
func (f FrontierData) Key() string {
	var b strings.Builder
	for i, c := range f.comp {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", c)
	}

	return b.String()
}
