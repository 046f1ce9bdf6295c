package linkedlist

// Options configures a [List] created with [NewWithOptions].
type Options[T any] struct {
	// Destructor is called once on every element the list discards.
	// Leave nil when elements need no cleanup.
	Destructor func(T)

	// Cloner copies an element for [List.Filter]. When nil, Filter uses the
	// element's Clone method if T implements [Cloner], and a plain or
	// reflection based deep copy otherwise; types the deep copy cannot
	// reach make Filter fail with [ErrCloneFailed].
	Cloner func(T) (T, error)
}

// Cloner is implemented by element types that know how to copy themselves.
// [List.Filter] prefers it over the reflection based deep copy.
type Cloner[T any] interface {
	Clone() T
}
