package controls

import "slices"

// orderedSet keeps binding targets in insertion order so events for a single
// trigger are emitted deterministically. Sets are tiny (targets per trigger),
// linear scans beat hashing at that size.
type orderedSet[T comparable] struct {
	items []T
}

// add inserts t and reports whether it was absent.
func (s *orderedSet[T]) add(t T) bool {
	if slices.Contains(s.items, t) {
		return false
	}
	s.items = append(s.items, t)
	return true
}

// remove deletes t and reports whether it was present.
func (s *orderedSet[T]) remove(t T) bool {
	i := slices.Index(s.items, t)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}
