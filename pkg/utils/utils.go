// Package utils provides small arithmetic, greeting and filtering utilities
// over loosely typed inputs.
package utils

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrInvalidArgument is returned when a caller-supplied value fails
// type or shape validation. Callers test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Multiply returns the product of a and b. Both arguments must be numeric
// (any builtin integer or float kind); otherwise ErrInvalidArgument is
// returned.
func Multiply(a, b any) (float64, error) {
	x, ok := Number(a)
	if !ok {
		return 0, fmt.Errorf("%w: arguments must be numbers", ErrInvalidArgument)
	}
	y, ok := Number(b)
	if !ok {
		return 0, fmt.Errorf("%w: arguments must be numbers", ErrInvalidArgument)
	}
	return x * y, nil
}

// Greet returns a greeting for name. Only a non-empty string is treated as
// a usable name; anything else falls back to "unknown". Greet never fails.
func Greet(name any) string {
	if s, ok := name.(string); ok && s != "" {
		return fmt.Sprintf("Hello, %s!", s)
	}
	return "Hello, unknown!"
}

// FilterEven returns a new slice holding the even-valued elements of seq in
// their original order. seq must be a slice or array; the elements may be of
// any numeric kind (or a mix, for []any). Non-numeric and non-integral
// elements are skipped. A value that is not a sequence, including nil,
// returns ErrInvalidArgument.
func FilterEven(seq any) ([]int64, error) {
	v := reflect.ValueOf(seq)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: argument must be a sequence", ErrInvalidArgument)
	}

	evens := []int64{}
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i).Interface()
		f, ok := Number(elem)
		if !ok {
			continue
		}
		n := int64(f)
		if float64(n) != f {
			// fractional values are never even
			continue
		}
		if n%2 == 0 {
			evens = append(evens, n)
		}
	}
	return evens, nil
}

// Number reports whether v is a numeric value and coerces it to float64.
// All builtin integer, unsigned and float kinds are accepted; NaN is not a
// usable number and is rejected.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
