package linkedlist

import "github.com/hasbyte1/go-containers/internal/node"

// This file holds the package-level generic functions for operations that
// turn a List[T] into a List[U] (T ≠ U). Go methods cannot introduce their
// own type parameters, so these cannot live on List.

// Map applies transform to every element of l and returns a new List[U] of
// the same length and order. The source list is left untouched and keeps
// ownership of its own elements.
//
// The new list uses destructor. When destructor is nil and U is the same type
// as T, the source list's destructor is shared instead.
//
//	upper := linkedlist.Map(words, strings.ToUpper, nil)
//	lengths := linkedlist.Map(words, func(s string) int { return len(s) }, nil)
func Map[T, U any](l *List[T], transform func(T) U, destructor func(U)) *List[U] {
	if destructor == nil {
		if inherited, ok := any(l.destructor).(func(U)); ok {
			destructor = inherited
		}
	}
	out := &List[U]{destructor: destructor}
	if cloner, ok := any(l.cloner).(func(U) (U, error)); ok {
		out.cloner = cloner
	}
	mapInto(l, out, transform)
	return out
}

func mapInto[T, U any](src *List[T], dst *List[U], transform func(T) U) {
	var tail *node.Node[U]
	for n := src.head; n != nil; n = n.Next {
		m := &node.Node[U]{Value: transform(n.Value)}
		if tail == nil {
			dst.head = m
		} else {
			tail.Next = m
		}
		tail = m
		dst.size++
	}
}
