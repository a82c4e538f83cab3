package store

import "github.com/google/uuid"

// Identifiable is implemented by list elements carrying a stable identity.
type Identifiable interface {
	ID() uuid.UUID
}

// IdentifiedList owns an ordered collection of identified elements and
// exposes it only through explicit accessors and mutators.
type IdentifiedList[T Identifiable] struct {
	items []T
}

// NewIdentifiedList builds a list from the given elements.
func NewIdentifiedList[T Identifiable](items ...T) IdentifiedList[T] {
	return IdentifiedList[T]{items: append([]T(nil), items...)}
}

// Len returns the number of elements.
func (l IdentifiedList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i.
func (l IdentifiedList[T]) At(i int) T {
	return l.items[i]
}

// IDs returns the element identities in order.
func (l IdentifiedList[T]) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(l.items))
	for i, item := range l.items {
		ids[i] = item.ID()
	}
	return ids
}

// IndexOf returns the position of the element with the given identity, or
// -1 when absent.
func (l IdentifiedList[T]) IndexOf(id uuid.UUID) int {
	for i, item := range l.items {
		if item.ID() == id {
			return i
		}
	}
	return -1
}

// Get returns the element with the given identity and whether it was found.
func (l IdentifiedList[T]) Get(id uuid.UUID) (T, bool) {
	if i := l.IndexOf(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// All returns a copy of the elements in order.
func (l IdentifiedList[T]) All() []T {
	return append([]T(nil), l.items...)
}

// Append returns a list with the elements added at the end.
func (l IdentifiedList[T]) Append(items ...T) IdentifiedList[T] {
	next := make([]T, 0, len(l.items)+len(items))
	next = append(next, l.items...)
	next = append(next, items...)
	return IdentifiedList[T]{items: next}
}

// Insert returns a list with item placed at index i.
func (l IdentifiedList[T]) Insert(i int, item T) IdentifiedList[T] {
	next := make([]T, 0, len(l.items)+1)
	next = append(next, l.items[:i]...)
	next = append(next, item)
	next = append(next, l.items[i:]...)
	return IdentifiedList[T]{items: next}
}

// RemoveID returns a list without the element carrying the given identity;
// the list is returned unchanged when the identity is absent.
func (l IdentifiedList[T]) RemoveID(id uuid.UUID) IdentifiedList[T] {
	i := l.IndexOf(id)
	if i < 0 {
		return l
	}
	next := make([]T, 0, len(l.items)-1)
	next = append(next, l.items[:i]...)
	next = append(next, l.items[i+1:]...)
	return IdentifiedList[T]{items: next}
}

// Update returns a list with fn applied to the element carrying the given
// identity; the list is returned unchanged when the identity is absent.
func (l IdentifiedList[T]) Update(id uuid.UUID, fn func(T) T) IdentifiedList[T] {
	i := l.IndexOf(id)
	if i < 0 {
		return l
	}
	next := append([]T(nil), l.items...)
	next[i] = fn(next[i])
	return IdentifiedList[T]{items: next}
}
