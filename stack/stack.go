// Package stack provides a generic LIFO stack, [Stack][T], built on the
// same owned node chain as the linkedlist package.
//
// Pushed values belong to the stack. [Stack.Pop] hands ownership back to
// the caller, so the stack's destructor never runs on popped values; it only
// runs on what is still stacked when [Stack.Destroy] is called:
//
//	s := stack.New[int](nil)
//	s.Push(10)
//	s.Push(20)
//	top, ok := s.Pop() // 20, true
//
// A Stack is not safe for concurrent use.
package stack

import (
	"github.com/hasbyte1/go-containers/internal/node"
)

// ErrDestructorPanic is wrapped by the error returned from [Stack.Destroy]
// when the element destructor panicked.
var ErrDestructorPanic = node.ErrDestructorPanic

// Stack is a generic LIFO stack. The top of the stack is the head of its
// node chain, so Push and Pop are O(1).
//
// The zero value is an empty stack without a destructor.
type Stack[T any] struct {
	head       *node.Node[T]
	size       int
	destructor func(T)
}

// New creates an empty stack. destructor may be nil.
func New[T any](destructor func(T)) *Stack[T] {
	return &Stack[T]{destructor: destructor}
}

// Push places value on top of the stack. The stack takes ownership of it.
func (s *Stack[T]) Push(value T) {
	s.head = &node.Node[T]{Value: value, Next: s.head}
	s.size++
}

// Pop removes the top value and returns it to the caller, who now owns it.
// Returns the zero value and false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	top := s.head
	s.head = top.Next
	top.Next = nil
	s.size--
	return top.Value, true
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

// Len returns the number of stacked values.
func (s *Stack[T]) Len() int { return s.size }

// ToSlice returns the stacked values from top to bottom.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for n := s.head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}
	return out
}

// Destroy releases every stacked value through the destructor, top first,
// and leaves the stack empty. Failing destructors do not stop the teardown;
// their errors are returned together.
func (s *Stack[T]) Destroy() error {
	head := s.head
	s.head = nil
	s.size = 0
	return node.Drain(head, s.destructor)
}
