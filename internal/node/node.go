// Package node holds the link cell shared by the list and stack containers
// together with the chain helpers both of them need.
package node

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrDestructorPanic is wrapped by the error returned from [Release] and
// [Drain] when an element destructor panics.
var ErrDestructorPanic = errors.New("containers: element destructor panicked")

// Node is a single link cell. It owns Value and, through Next, the rest of
// the chain. Chains are acyclic and have no back references.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// Walk returns the node n steps after head, or nil if the chain is shorter.
func Walk[T any](head *Node[T], n int) *Node[T] {
	current := head
	for i := 0; current != nil && i < n; i++ {
		current = current.Next
	}
	return current
}

// Len counts the nodes reachable from head.
func Len[T any](head *Node[T]) int {
	n := 0
	for current := head; current != nil; current = current.Next {
		n++
	}
	return n
}

// Release hands value to destructor. A nil destructor is a no-op. A panic
// inside the destructor is recovered and reported as an error wrapping
// [ErrDestructorPanic].
func Release[T any](value T, destructor func(T)) (err error) {
	if destructor == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDestructorPanic, r)
		}
	}()
	destructor(value)
	return nil
}

// Drain unlinks every node from head to tail and releases each value
// exactly once. A failing destructor does not stop the loop; all failures
// are returned together.
func Drain[T any](head *Node[T], destructor func(T)) error {
	var mErr multierror.Error
	for current := head; current != nil; {
		next := current.Next
		current.Next = nil
		if err := Release(current.Value, destructor); err != nil {
			_ = multierror.Append(&mErr, err)
		}
		current = next
	}
	return mErr.ErrorOrNil()
}
