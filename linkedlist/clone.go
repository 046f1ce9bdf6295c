package linkedlist

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/mitchellh/copystructure"
)

// shape summarises what a deep copy of a type has to deal with.
type shape struct {
	// refs is set when the type reaches pointers, slices, maps, channels
	// or funcs, so plain assignment would share state with the source.
	refs bool
	// hidden is set when the type reaches an unexported struct field,
	// which the reflection based deep copy leaves zeroed.
	hidden bool
	// dynamic is set when the type reaches an interface, whose contents
	// can only be checked per value.
	dynamic bool
}

var shapes sync.Map // reflect.Type -> shape

func shapeOf(t reflect.Type) shape {
	if s, ok := shapes.Load(t); ok {
		return s.(shape)
	}
	var s shape
	walkType(t, &s, make(map[reflect.Type]bool))
	shapes.Store(t, s)
	return s
}

func walkType(t reflect.Type, s *shape, seen map[reflect.Type]bool) {
	if seen[t] {
		return
	}
	seen[t] = true

	// time.Time and friends have dedicated copiers.
	if _, ok := copystructure.Copiers[t]; ok {
		s.refs = true
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				s.hidden = true
			}
			walkType(f.Type, s, seen)
		}
	case reflect.Array:
		walkType(t.Elem(), s, seen)
	case reflect.Pointer, reflect.Slice:
		s.refs = true
		walkType(t.Elem(), s, seen)
	case reflect.Map:
		s.refs = true
		walkType(t.Key(), s, seen)
		walkType(t.Elem(), s, seen)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		s.refs = true
	case reflect.Interface:
		s.dynamic = true
	}
}

// copyValue copies value without a cloner. Values that hold no references
// are copied by assignment, which also carries unexported fields. Anything
// else goes through copystructure, unless it reaches state copystructure
// cannot see, in which case copyValue refuses rather than returning a
// zeroed copy.
func copyValue[T any](value T) (T, error) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	s := shapeOf(t)
	if !s.refs && !s.dynamic {
		return value, nil
	}
	if s.hidden {
		return zero, fmt.Errorf("%s reaches unexported fields; set Options.Cloner or implement Clone", t)
	}
	if s.dynamic {
		if err := checkDynamic(reflect.ValueOf(&value).Elem(), make(map[uintptr]bool)); err != nil {
			return zero, err
		}
	}

	copied, err := copystructure.Copy(value)
	if err != nil {
		return zero, err
	}
	if copied == nil {
		return zero, nil
	}
	v, ok := copied.(T)
	if !ok {
		return zero, fmt.Errorf("copy produced %T, want %T", copied, zero)
	}
	return v, nil
}

// checkDynamic walks v looking through interfaces for concrete types with
// unexported fields.
func checkDynamic(v reflect.Value, seen map[uintptr]bool) error {
	if !v.IsValid() || !shapeOf(v.Type()).dynamic {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		elem := v.Elem()
		if shapeOf(elem.Type()).hidden {
			return fmt.Errorf("%s reaches unexported fields; set Options.Cloner or implement Clone", elem.Type())
		}
		return checkDynamic(elem, seen)
	case reflect.Pointer:
		if v.IsNil() || seen[v.Pointer()] {
			return nil
		}
		seen[v.Pointer()] = true
		return checkDynamic(v.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err := checkDynamic(v.Field(i), seen); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := checkDynamic(v.Index(i), seen); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := checkDynamic(iter.Key(), seen); err != nil {
				return err
			}
			if err := checkDynamic(iter.Value(), seen); err != nil {
				return err
			}
		}
	}
	return nil
}
