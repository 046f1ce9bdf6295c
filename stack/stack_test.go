package stack_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shoenig/test/must"
	"pgregory.net/rapid"

	"github.com/hasbyte1/go-containers/stack"
)

func TestNew(t *testing.T) {
	s := stack.New[int](nil)
	must.Eq(t, 0, s.Len())
	must.True(t, s.IsEmpty())
}

func TestPush(t *testing.T) {
	s := stack.New[int](nil)
	s.Push(10)
	s.Push(20)
	must.Eq(t, 2, s.Len())
	if diff := cmp.Diff([]int{20, 10}, s.ToSlice()); diff != "" {
		t.Fatalf("stack contents (-want +got):\n%s", diff)
	}
}

func TestPop(t *testing.T) {
	released := 0
	s := stack.New(func(int) { released++ })
	s.Push(10)
	s.Push(20)
	s.Push(30)
	must.Eq(t, 3, s.Len())

	v, ok := s.Pop()
	must.True(t, ok)
	must.Eq(t, 30, v)
	must.Eq(t, 2, s.Len())
	must.Eq(t, 0, released, must.Sprint("Pop must not run the destructor"))
}

func TestPop_Empty(t *testing.T) {
	s := stack.New[string](nil)
	v, ok := s.Pop()
	must.False(t, ok)
	must.Eq(t, "", v)
	must.Eq(t, 0, s.Len())
}

func TestIsEmpty(t *testing.T) {
	s := stack.New[int](nil)
	must.True(t, s.IsEmpty())
	s.Push(10)
	must.False(t, s.IsEmpty())
	s.Pop()
	must.True(t, s.IsEmpty())
}

func TestZeroValue(t *testing.T) {
	var s stack.Stack[int]
	s.Push(1)
	v, ok := s.Pop()
	must.True(t, ok)
	must.Eq(t, 1, v)
	must.NoError(t, s.Destroy())
}

func TestDestroy(t *testing.T) {
	var released []int
	s := stack.New(func(v int) { released = append(released, v) })
	for _, v := range []int{1, 2, 3, 4} {
		s.Push(v)
	}
	top, _ := s.Pop()
	must.Eq(t, 4, top)

	must.NoError(t, s.Destroy())
	must.Eq(t, []int{3, 2, 1}, released)
	must.True(t, s.IsEmpty())

	// destroying an empty stack is a no-op
	must.NoError(t, s.Destroy())
	must.Eq(t, 3, len(released))
}

func TestDestroy_ContinuesAfterPanic(t *testing.T) {
	var released []int
	s := stack.New(func(v int) {
		if v == 2 {
			panic("stuck")
		}
		released = append(released, v)
	})
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	err := s.Destroy()
	must.Error(t, err)
	must.True(t, errors.Is(err, stack.ErrDestructorPanic))
	must.Eq(t, []int{3, 1}, released)
	must.Eq(t, 0, s.Len())
}

func TestStack_PropLIFO(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Int(), 0, 64).Draw(t, "values")
		s := stack.New[int](nil)
		for _, v := range values {
			s.Push(v)
		}
		must.Eq(t, len(values), s.Len())
		for i := len(values) - 1; i >= 0; i-- {
			must.False(t, s.IsEmpty())
			v, ok := s.Pop()
			must.True(t, ok)
			must.Eq(t, values[i], v)
			must.Eq(t, i, s.Len())
		}
		_, ok := s.Pop()
		must.False(t, ok)
		must.Eq(t, 0, s.Len())
		must.True(t, s.IsEmpty())
	})
}

func TestStack_PropIsEmptyMatchesLen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := stack.New[int](nil)
		ops := rapid.SliceOfN(rapid.Bool(), 0, 100).Draw(t, "ops")
		for i, push := range ops {
			if push {
				s.Push(i)
			} else {
				s.Pop()
			}
			must.Eq(t, s.Len() == 0, s.IsEmpty())
			must.True(t, s.Len() >= 0)
		}
	})
}
