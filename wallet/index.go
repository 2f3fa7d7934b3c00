package wallet

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// indexSet tracks occupied registry slots and hands out the smallest free one.
type indexSet struct {
	used mapset.Set
}

func newIndexSet() *indexSet {
	return &indexSet{used: mapset.NewThreadUnsafeSet()}
}

// next returns the smallest non-negative index not in use. It does not claim it.
func (s *indexSet) next() int {
	i := 0
	for s.used.Contains(i) {
		i++
	}
	return i
}

func (s *indexSet) claim(i int) {
	s.used.Add(i)
}

func (s *indexSet) release(i int) {
	s.used.Remove(i)
}

// sorted returns the occupied indices in ascending order.
func (s *indexSet) sorted() []int {
	out := make([]int, 0, s.used.Cardinality())
	for _, v := range s.used.ToSlice() {
		out = append(out, v.(int))
	}
	sort.Ints(out)
	return out
}
