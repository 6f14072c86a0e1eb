package cargo

import "iter"

// Broadcast is a batch-construction argument: either one value shared by
// every entity in the batch, or a list holding exactly one value per
// entity. The zero value behaves like Shared of the element type's zero
// value.
type Broadcast[T any] struct {
	perEntity bool
	shared    T
	values    []T
}

// Shared builds a broadcast whose single value is replicated across all
// entities in the batch. Resolution never fails and the value is not
// physically duplicated until encode time.
func Shared[T any](value T) Broadcast[T] {
	return Broadcast[T]{shared: value}
}

// PerEntity builds a broadcast carrying one distinct value per entity.
// Resolution fails unless the list length equals the batch's entity
// count.
func PerEntity[T any](values []T) Broadcast[T] {
	return Broadcast[T]{perEntity: true, values: values}
}

// IsShared reports whether the broadcast carries a single shared value.
func (b Broadcast[T]) IsShared() bool {
	return !b.perEntity
}

// check validates the broadcast against the batch's entity count.
func (b Broadcast[T]) check(expected uint64) error {
	if b.perEntity && uint64(len(b.values)) != expected {
		return CountMismatchError{Supplied: uint64(len(b.values)), Expected: expected}
	}
	return nil
}

// at returns the value for entity i. Only valid after check passes.
func (b Broadcast[T]) at(i uint64) T {
	if b.perEntity {
		return b.values[i]
	}
	return b.shared
}

// Resolve yields the per-entity value sequence of length expected, or a
// CountMismatchError when a per-entity list's length disagrees. A shared
// broadcast yields the same value expected times.
func (b Broadcast[T]) Resolve(expected uint64) (iter.Seq[T], error) {
	if err := b.check(expected); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for i := uint64(0); i < expected; i++ {
			if !yield(b.at(i)) {
				return
			}
		}
	}, nil
}

// Map transforms a broadcast element-wise, preserving its shape.
func Map[A, B any](b Broadcast[A], f func(A) B) Broadcast[B] {
	if b.IsShared() {
		return Shared(f(b.shared))
	}
	out := make([]B, len(b.values))
	for i, v := range b.values {
		out[i] = f(v)
	}
	return PerEntity(out)
}

// Zip2 combines two independently broadcast arguments positionally
// against the same entity count. Arguments are checked in parameter
// order and the first mismatch is reported. When every argument is
// shared the result is shared and no per-entity values are materialized.
func Zip2[A, B, C any](expected uint64, a Broadcast[A], b Broadcast[B], combine func(A, B) C) (Broadcast[C], error) {
	if a.IsShared() && b.IsShared() {
		return Shared(combine(a.shared, b.shared)), nil
	}
	if err := a.check(expected); err != nil {
		return Broadcast[C]{}, err
	}
	if err := b.check(expected); err != nil {
		return Broadcast[C]{}, err
	}
	out := make([]C, expected)
	for i := uint64(0); i < expected; i++ {
		out[i] = combine(a.at(i), b.at(i))
	}
	return PerEntity(out), nil
}

// Zip3 combines three broadcast arguments; see Zip2 for the resolution
// rules.
func Zip3[A, B, C, D any](
	expected uint64,
	a Broadcast[A], b Broadcast[B], c Broadcast[C],
	combine func(A, B, C) D,
) (Broadcast[D], error) {
	if a.IsShared() && b.IsShared() && c.IsShared() {
		return Shared(combine(a.shared, b.shared, c.shared)), nil
	}
	if err := a.check(expected); err != nil {
		return Broadcast[D]{}, err
	}
	if err := b.check(expected); err != nil {
		return Broadcast[D]{}, err
	}
	if err := c.check(expected); err != nil {
		return Broadcast[D]{}, err
	}
	out := make([]D, expected)
	for i := uint64(0); i < expected; i++ {
		out[i] = combine(a.at(i), b.at(i), c.at(i))
	}
	return PerEntity(out), nil
}

// Zip4 combines four broadcast arguments; see Zip2 for the resolution
// rules.
func Zip4[A, B, C, D, E any](
	expected uint64,
	a Broadcast[A], b Broadcast[B], c Broadcast[C], d Broadcast[D],
	combine func(A, B, C, D) E,
) (Broadcast[E], error) {
	if a.IsShared() && b.IsShared() && c.IsShared() && d.IsShared() {
		return Shared(combine(a.shared, b.shared, c.shared, d.shared)), nil
	}
	if err := a.check(expected); err != nil {
		return Broadcast[E]{}, err
	}
	if err := b.check(expected); err != nil {
		return Broadcast[E]{}, err
	}
	if err := c.check(expected); err != nil {
		return Broadcast[E]{}, err
	}
	if err := d.check(expected); err != nil {
		return Broadcast[E]{}, err
	}
	out := make([]E, expected)
	for i := uint64(0); i < expected; i++ {
		out[i] = combine(a.at(i), b.at(i), c.at(i), d.at(i))
	}
	return PerEntity(out), nil
}
