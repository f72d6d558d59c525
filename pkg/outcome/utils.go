package outcome

import "reflect"

// IsNil reports whether v is nil or a typed nil held in an interface.
// Zero values of kinds that cannot be nil (numbers, strings, structs,
// arrays) are not nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
