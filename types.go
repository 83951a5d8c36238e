package to

import (
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
	"golang.org/x/exp/constraints"
)

// Basic lists the non-integer targets [Cast] hands to [cast.ToE].
type Basic = cast.Basic

// Integer matches every integer type, named ones included.
type Integer = safemath.Integer

// Number matches every type with a built-in numeric conversion.
type Number interface {
	constraints.Integer | constraints.Float
}

// Type is the set of targets accepted by [Cast].
type Type interface {
	Basic | Integer
}

// Into is implemented by types that always convert to T.
type Into[T any] interface {
	Into() T
}

// TryInto is implemented by types that may fail to convert to T.
type TryInto[T any] interface {
	TryInto() (T, error)
}
