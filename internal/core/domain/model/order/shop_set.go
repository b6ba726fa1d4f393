package order

import (
	"slices"

	"grocery/internal/core/domain/model/kernel"
)

// ShopSet is a set of shop ids. The zero value is an empty set ready to use.
// Order uses it for the shops that declined; the order never removes from it.
type ShopSet struct {
	ids map[kernel.ShopID]struct{}
}

// NewShopSet builds a set holding ids; duplicates collapse.
//
// Parameters:
//   - ids: initial members, in any order
//
// Returns:
//   - ShopSet: the populated set
func NewShopSet(ids ...kernel.ShopID) ShopSet {
	s := ShopSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was not already present.
func (s *ShopSet) Add(id kernel.ShopID) bool {
	if s.ids == nil {
		s.ids = make(map[kernel.ShopID]struct{})
	}
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Contains reports whether id is a member.
func (s ShopSet) Contains(id kernel.ShopID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of members.
func (s ShopSet) Len() int {
	return len(s.ids)
}

// Values returns the members in ascending order.
func (s ShopSet) Values() []kernel.ShopID {
	values := make([]kernel.ShopID, 0, len(s.ids))
	for id := range s.ids {
		values = append(values, id)
	}
	slices.Sort(values)
	return values
}

// Clone returns an independent copy; changes to either set do not affect the other.
func (s ShopSet) Clone() ShopSet {
	return NewShopSet(s.Values()...)
}
