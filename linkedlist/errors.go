package linkedlist

import (
	"errors"

	"github.com/hasbyte1/go-containers/internal/node"
)

// Sentinel errors returned by List operations.
//
// Use [errors.Is] for comparisons:
//
//	if err := l.Destroy(); errors.Is(err, linkedlist.ErrDestructorPanic) {
//	    // at least one element failed to release
//	}
var (
	// ErrDestructorPanic is wrapped by errors from [List.RemoveAt] and
	// [List.Destroy] when the element destructor panicked. Teardown still
	// visits every remaining element.
	ErrDestructorPanic = node.ErrDestructorPanic

	// ErrCloneFailed is returned by [List.Filter] when a matching element
	// could not be copied into the derived list.
	ErrCloneFailed = errors.New("linkedlist: element could not be cloned")
)
