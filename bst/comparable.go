package bst

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ComparableContent is the capability content of a binary search tree has to
// provide. For any a and b, exactly one of a.IsGreater(b), a.IsEqual(b) and
// a.IsLess(b) has to be true.
type ComparableContent[C any] interface {
	IsGreater(C) bool
	IsEqual(C) bool
	IsLess(C) bool
}

// IntComparable is an integer usable as ComparableContent.
type IntComparable int

// IsGreater is part of interface ComparableContent.
func (i IntComparable) IsGreater(other IntComparable) bool {
	return i > other
}

// IsEqual is part of interface ComparableContent.
func (i IntComparable) IsEqual(other IntComparable) bool {
	return i == other
}

// IsLess is part of interface ComparableContent.
func (i IntComparable) IsLess(other IntComparable) bool {
	return i < other
}

func (i IntComparable) String() string {
	return strconv.Itoa(int(i))
}

// Ordered wraps a value of a type with a built-in order, making it usable as
// ComparableContent.
type Ordered[V constraints.Ordered] struct {
	Value V
}

// Of wraps v.
func Of[V constraints.Ordered](v V) Ordered[V] {
	return Ordered[V]{Value: v}
}

// IsGreater is part of interface ComparableContent.
func (o Ordered[V]) IsGreater(other Ordered[V]) bool {
	return o.Value > other.Value
}

// IsEqual is part of interface ComparableContent.
func (o Ordered[V]) IsEqual(other Ordered[V]) bool {
	return o.Value == other.Value
}

// IsLess is part of interface ComparableContent.
func (o Ordered[V]) IsLess(other Ordered[V]) bool {
	return o.Value < other.Value
}

func (o Ordered[V]) String() string {
	return fmt.Sprint(o.Value)
}
