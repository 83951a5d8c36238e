package to

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

// Cast converts the dynamic value v to T.
//
// Integer targets, named ones included, are range-checked with [TryNum]:
// integer inputs are checked directly, anything else is first parsed by
// [cast.ToE] into an int64 or uint64. All other targets go to [cast.ToE].
// Errors are returned unmodified.
func Cast[T Type](v any) (T, error) {
	var zero T

	switch any(zero).(type) {
	case string:
		return castBasic[T, string](v)
	case bool:
		return castBasic[T, bool](v)
	case float32:
		return castBasic[T, float32](v)
	case float64:
		return castBasic[T, float64](v)
	case time.Time:
		return castBasic[T, time.Time](v)
	case time.Duration:
		return castBasic[T, time.Duration](v)
	}

	target := reflect.TypeFor[T]()
	narrowTo, ok := narrowers[target.Kind()]
	if !ok {
		return zero, unsupported(zero, v)
	}

	w, err := widen(v, isSignedKind(target.Kind()))
	if err != nil {
		return zero, err
	}

	n, err := narrowTo(w)
	if err != nil {
		return zero, err
	}

	return reflect.ValueOf(n).Convert(target).Interface().(T), nil
}

// MustCast is like [Cast] but panics on error.
func MustCast[T Type](v any) T {
	return Must[T](Cast[T](v))
}

func castBasic[T any, B Basic](v any) (T, error) {
	b, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(b).(T), nil
}

// narrowers maps each integer kind to a TryNum instantiation for its
// builtin type. Input is always an int64 or a uint64 from widen.
var narrowers = map[reflect.Kind]func(any) (any, error){
	reflect.Int:     narrow[int],
	reflect.Int8:    narrow[int8],
	reflect.Int16:   narrow[int16],
	reflect.Int32:   narrow[int32],
	reflect.Int64:   narrow[int64],
	reflect.Uint:    narrow[uint],
	reflect.Uint8:   narrow[uint8],
	reflect.Uint16:  narrow[uint16],
	reflect.Uint32:  narrow[uint32],
	reflect.Uint64:  narrow[uint64],
	reflect.Uintptr: narrow[uintptr],
}

func narrow[I Integer](w any) (any, error) {
	var (
		n   I
		err error
	)

	switch x := w.(type) {
	case int64:
		n, err = TryNum[I](x)
	case uint64:
		n, err = TryNum[I](x)
	default:
		err = unsupported(n, w)
	}

	return n, err
}

// widen returns v as an int64 or uint64 without loss. Integers of any kind
// are taken as is; other values are parsed by cast, as int64 when the target
// is signed and as uint64 otherwise.
func widen(v any, signed bool) (any, error) {
	rv := reflect.ValueOf(v)
	switch {
	case isSignedKind(rv.Kind()):
		return rv.Int(), nil
	case isUnsignedKind(rv.Kind()):
		return rv.Uint(), nil
	case signed:
		i, err := cast.ToE[int64](v)
		return i, err
	default:
		u, err := cast.ToE[uint64](v)
		return u, err
	}
}

func isSignedKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsignedKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func unsupported(target, v any) error {
	return fmt.Errorf("unsupported conversion to %T from %T", target, v)
}
