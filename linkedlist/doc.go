// Package linkedlist provides a generic singly linked list, [List][T], that
// owns its elements and supports positional access, traversal, map, filter
// and an in-place merge sort.
//
// # Ownership
//
// A List may carry a destructor, a func(T) that is called exactly once for
// every element the list owns when that element is discarded: either by
// [List.RemoveAt] or by [List.Destroy]. Values are handed to the list on
// [List.Append] / [List.InsertAt] and never come back out through a removal,
// so the destructor is the single place where per-element cleanup lives:
//
//	files := linkedlist.New(func(f *os.File) { _ = f.Close() })
//	files.Append(f1)
//	files.Append(f2)
//	_, _ = files.RemoveAt(0) // closes f1
//	_ = files.Destroy()      // closes f2
//
// Most element types need no destructor at all; pass nil.
//
// # Derived lists
//
// [List.Map], [Map] and [List.Filter] build new, independent lists. They
// never share nodes with their source. Filter copies the matching elements
// so that the source and the derived list can each release their own copy;
// see [List.Filter] for how copies are made.
//
// # Type-transforming operations
//
// Go methods cannot introduce new type parameters, so the map that changes
// the element type is a package-level function:
//
//	lengths := linkedlist.Map(words, func(s string) int { return len(s) }, nil)
//
// # Positions
//
// Positions are 0-based. Out-of-range positions never panic: reads report
// false, removals are no-ops and insertions past the end append.
//
// # Concurrency
//
// A List is not safe for concurrent use. Callers sharing a list between
// goroutines must serialise every call on it.
package linkedlist
