package linkedlist

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/hasbyte1/go-containers/internal/node"
)

// List is a generic singly linked list that owns its elements.
//
// The zero value is an empty list without a destructor and is ready to use.
//
// # Creating a list
//
//	l := linkedlist.New[string](nil)
//	l := linkedlist.New(func(f *os.File) { _ = f.Close() })
//	l := linkedlist.From([]int{3, 1, 2}, nil)
//
// # Invariants
//
//   - Len() equals the number of nodes reachable from the head.
//   - The head is nil exactly when Len() is 0.
//   - The destructor runs at most once per element, and only for elements
//     the list still owns.
type List[T any] struct {
	head       *node.Node[T]
	size       int
	destructor func(T)
	cloner     func(T) (T, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty list. destructor may be nil.
func New[T any](destructor func(T)) *List[T] {
	return &List[T]{destructor: destructor}
}

// NewWithOptions creates an empty list configured by opts.
func NewWithOptions[T any](opts Options[T]) *List[T] {
	return &List[T]{destructor: opts.Destructor, cloner: opts.Cloner}
}

// From creates a list holding items in order. The list takes ownership of
// the items; destructor may be nil.
func From[T any](items []T, destructor func(T)) *List[T] {
	l := New(destructor)
	var tail *node.Node[T]
	for _, item := range items {
		n := &node.Node[T]{Value: item}
		if tail == nil {
			l.head = n
		} else {
			tail.Next = n
		}
		tail = n
		l.size++
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// GetAt returns the element at position together with a presence flag.
// Returns the zero value and false when position is out of range.
//
// The list keeps ownership of the element: for pointer-like T the caller
// must not use the value after it has been removed or the list destroyed.
func (l *List[T]) GetAt(position int) (T, bool) {
	var zero T
	if position < 0 || position >= l.size {
		return zero, false
	}
	n := node.Walk(l.head, position)
	if n == nil {
		return zero, false
	}
	return n.Value, true
}

// ToSlice returns the elements in list order as a new slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}
	return out
}

// Values returns an iterator over the elements in list order.
// The list must not be structurally modified while iterating.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the list as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToSlice())
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.ToSlice())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural operations
// ─────────────────────────────────────────────────────────────────────────────

// Append adds value at the end of the list. The list takes ownership of it.
func (l *List[T]) Append(value T) {
	n := &node.Node[T]{Value: value}
	if l.head == nil {
		l.head = n
	} else {
		tail := l.head
		for tail.Next != nil {
			tail = tail.Next
		}
		tail.Next = n
	}
	l.size++
}

// InsertAt inserts value so that it ends up at position. A position of 0
// (or less) or an empty list inserts at the head. Any position at or past
// Len() appends at the end.
func (l *List[T]) InsertAt(value T, position int) {
	n := &node.Node[T]{Value: value}
	if position <= 0 || l.head == nil {
		n.Next = l.head
		l.head = n
		l.size++
		return
	}

	prev := l.head
	for i := 0; prev.Next != nil && i < position-1; i++ {
		prev = prev.Next
	}
	n.Next = prev.Next
	prev.Next = n
	l.size++
}

// RemoveAt unlinks the element at position and hands it to the destructor.
// It reports whether an element was removed; out-of-range positions are a
// no-op. The returned error is non-nil only when the destructor panicked, in
// which case the element has still been removed.
func (l *List[T]) RemoveAt(position int) (bool, error) {
	if l.head == nil || position < 0 || position >= l.size {
		return false, nil
	}

	var removed *node.Node[T]
	if position == 0 {
		removed = l.head
		l.head = removed.Next
	} else {
		prev := node.Walk(l.head, position-1)
		if prev == nil || prev.Next == nil {
			return false, nil
		}
		removed = prev.Next
		prev.Next = removed.Next
	}
	removed.Next = nil
	l.size--
	return true, node.Release(removed.Value, l.destructor)
}

// Destroy releases every element through the destructor and leaves the list
// empty. Every element is visited even if some destructors panic; those
// failures are returned together, each wrapping [ErrDestructorPanic].
func (l *List[T]) Destroy() error {
	head := l.head
	l.head = nil
	l.size = 0
	return node.Drain(head, l.destructor)
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal & derived lists
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls action on every element in list order.
func (l *List[T]) ForEach(action func(T)) {
	for n := l.head; n != nil; n = n.Next {
		action(n.Value)
	}
}

// Map returns a new list holding transform applied to every element, in
// order. The new list uses destructor, or the source list's destructor when
// destructor is nil. The source list is left untouched.
//
// For a map that changes the element type use the package-level [Map].
func (l *List[T]) Map(transform func(T) T, destructor func(T)) *List[T] {
	if destructor == nil {
		destructor = l.destructor
	}
	out := &List[T]{destructor: destructor, cloner: l.cloner}
	mapInto(l, out, transform)
	return out
}

// Filter returns a new list holding copies of the elements for which
// predicate returns true, in their original relative order. The new list
// shares the source list's destructor and cloner.
//
// Copies are made with the configured [Options.Cloner]; failing that with
// the element's Clone method when T implements [Cloner]. Otherwise values
// that hold no pointers, slices, maps or interfaces are copied by plain
// assignment, and everything else by a reflection based deep copy. The deep
// copy cannot reach unexported struct fields, so a type that needs one
// (*big.Int, most library types) makes Filter fail with [ErrCloneFailed]
// instead of producing zeroed copies; give such types a Cloner or a Clone
// method.
//
// When a copy fails the partially built list is destroyed and an error
// wrapping [ErrCloneFailed] is returned.
func (l *List[T]) Filter(predicate func(T) bool) (*List[T], error) {
	out := &List[T]{destructor: l.destructor, cloner: l.cloner}
	var tail *node.Node[T]
	index := 0
	for n := l.head; n != nil; n = n.Next {
		if predicate(n.Value) {
			copied, err := l.clone(n.Value)
			if err != nil {
				_ = out.Destroy()
				return nil, fmt.Errorf("%w: element %d: %v", ErrCloneFailed, index, err)
			}
			c := &node.Node[T]{Value: copied}
			if tail == nil {
				out.head = c
			} else {
				tail.Next = c
			}
			tail = c
			out.size++
		}
		index++
	}
	return out, nil
}

func (l *List[T]) clone(value T) (T, error) {
	if l.cloner != nil {
		return l.cloner(value)
	}
	if c, ok := any(value).(Cloner[T]); ok {
		return c.Clone(), nil
	}
	return copyValue(value)
}
