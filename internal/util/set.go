package util

// KeySet is a set of comparable values. The zero value is not usable; create
// one with NewKeySet.
type KeySet[E comparable] map[E]struct{}

// NewKeySet creates a KeySet holding the given elements.
func NewKeySet[E comparable](of ...E) KeySet[E] {
	s := make(KeySet[E], len(of))
	for _, e := range of {
		s[e] = struct{}{}
	}
	return s
}

// Add adds the given element to the set. Adding an element already in the set
// has no effect.
func (s KeySet[E]) Add(element E) {
	s[element] = struct{}{}
}

// Has returns whether the set contains the given element.
func (s KeySet[E]) Has(element E) bool {
	_, ok := s[element]
	return ok
}

// Elements returns the elements of the set in no particular order.
func (s KeySet[E]) Elements() []E {
	elems := make([]E, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	return elems
}
