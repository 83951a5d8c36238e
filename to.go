package to

import "go.dw1.io/safemath"

// To converts v to T by calling v.Into.
func To[T any, S Into[T]](v S) T {
	return v.Into()
}

// TryTo converts v to T by calling v.TryInto. The error is returned as is.
func TryTo[T any, S TryInto[T]](v S) (T, error) {
	return v.TryInto()
}

// Num converts v to T with Go's built-in numeric conversion. Narrowing
// follows the language rules; use [TryNum] when v may not fit in T.
func Num[T, S Number](v S) T {
	return T(v)
}

// TryNum converts v to T, failing when v does not fit in T. Named integer
// types work on either side. The error comes from [safemath.Convert]
// unmodified.
func TryNum[T, S Integer](v S) (T, error) {
	return safemath.Convert[T](v)
}

// Assert reports whether v holds a T and returns it.
func Assert[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// Must returns v, or panics if err is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
