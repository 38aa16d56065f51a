package bencode

import (
	"reflect"
	"unicode/utf8"
)

// The projection layer converts a *Value into a concrete Go shape. The
// supported target set is closed:
//
//	int64      the raw integer
//	[]byte     string contents as a view, no copy
//	string     string contents, UTF-8 validity required
//	[N]byte    fixed-size array, exact length match required
//	Pair[A, B] list with at least two elements, both convertible
//	List       the list container
//	*Dict      the dictionary container
//	*Value     the value itself (identity, always succeeds)
//
// Every conversion is fallible and uniform: a wrong variant, a failed
// validation, and missing data all yield the same ok = false.

// Pair holds the first two elements of a list, each converted
// independently.
type Pair[A, B any] struct {
	First  A
	Second B
}

// fromValue is the capability hook for generic composite targets. It is
// unexported, which keeps the supported target set closed to this package.
type fromValuer interface {
	fromValue(v *Value) bool
}

func (p *Pair[A, B]) fromValue(v *Value) bool {
	if v.kind != KindList || len(v.list) < 2 {
		return false
	}
	a, ok := To[A](&v.list[0])
	if !ok {
		return false
	}
	b, ok := To[B](&v.list[1])
	if !ok {
		return false
	}
	p.First, p.Second = a, b
	return true
}

// To converts v into the requested target shape. See the package table
// above for the supported shapes.
func To[T any](v *Value) (T, bool) {
	var out T
	if v == nil {
		return out, false
	}
	switch p := any(&out).(type) {
	case *int64:
		if v.kind != KindInt {
			return out, false
		}
		*p = v.num
	case *[]byte:
		if v.kind != KindStr {
			return out, false
		}
		*p = v.str.b
	case *string:
		if v.kind != KindStr || !utf8.Valid(v.str.b) {
			return out, false
		}
		*p = string(v.str.b)
	case *List:
		if v.kind != KindList {
			return out, false
		}
		*p = v.list
	case **Dict:
		if v.kind != KindDict {
			return out, false
		}
		*p = v.dict
	case **Value:
		*p = v
	case fromValuer:
		if !p.fromValue(v) {
			return out, false
		}
	default:
		if !toByteArray(&out, v) {
			return out, false
		}
	}
	return out, true
}

// toByteArray handles [N]byte targets. Array lengths are not expressible
// as type parameters, so the one reflective case lives here.
func toByteArray(out any, v *Value) bool {
	rv := reflect.ValueOf(out).Elem()
	if rv.Kind() != reflect.Array || rv.Type().Elem().Kind() != reflect.Uint8 {
		return false
	}
	if v.kind != KindStr || len(v.str.b) != rv.Len() {
		return false
	}
	reflect.Copy(rv, reflect.ValueOf(v.str.b))
	return true
}

// Get assumes v is a dictionary and returns the value stored under key,
// converted to T. The dictionary check, the key lookup, and the conversion
// are fused into one fallible step: a non-dictionary v, a missing key, and
// a failed conversion are indistinguishable.
func Get[T any](v *Value, key string) (T, bool) {
	if v == nil || v.kind != KindDict {
		var zero T
		return zero, false
	}
	e := v.dict.Lookup([]byte(key))
	if e == nil {
		var zero T
		return zero, false
	}
	return To[T](e)
}
