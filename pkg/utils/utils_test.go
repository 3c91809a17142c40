package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 5.0, Add(2, 3), "2 + 3 should equal 5")
	assert.Equal(t, -1.0, Add(2, -3), "negative operands should be supported")
	assert.InDelta(t, 0.3, Add(0.1, 0.2), 1e-9, "fractional operands should be supported")
}

func TestAdd_Commutative(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {-4, 9}, {0.5, 2.25}, {0, 0}}
	for _, p := range pairs {
		assert.Equal(t, Add(p[0], p[1]), Add(p[1], p[0]), "Add(%v, %v) should be commutative", p[0], p[1])
	}
}

func TestMultiply(t *testing.T) {
	got, err := Multiply(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got, "3 * 4 should equal 12")

	got, err = Multiply(-2, 5)
	require.NoError(t, err)
	assert.Equal(t, -10.0, got)

	got, err = Multiply(2.5, 4)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestMultiply_ExactForIntegers(t *testing.T) {
	for a := int64(-10); a <= 10; a++ {
		for b := int64(-10); b <= 10; b++ {
			got, err := Multiply(a, b)
			require.NoError(t, err)
			assert.Equal(t, float64(a*b), got, "Multiply(%d, %d)", a, b)
		}
	}
}

func TestMultiply_InvalidArguments(t *testing.T) {
	for _, args := range [][2]any{
		{"a", 2},
		{2, "b"},
		{nil, 3},
		{true, 1},
		{[]int{1}, 2},
	} {
		_, err := Multiply(args[0], args[1])
		require.Error(t, err, "Multiply(%v, %v) should fail", args[0], args[1])
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorContains(t, err, "arguments must be numbers")
	}
}

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello, Alice!", Greet("Alice"))
	assert.Equal(t, "Hello, unknown!", Greet(""))
	assert.Equal(t, "Hello, unknown!", Greet(nil))
	assert.Equal(t, "Hello, unknown!", Greet(123))
	assert.Equal(t, "Hello, unknown!", Greet([]string{"Bob"}))
}

func TestFilterEven(t *testing.T) {
	got, err := FilterEven([]int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 6}, got, "order should be preserved")

	got, err = FilterEven([]int{})
	require.NoError(t, err)
	assert.Empty(t, got, "empty input should yield an empty slice")

	got, err = FilterEven([]float64{2.0, 3.5, 4.0})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, got, "fractional values are never even")

	got, err = FilterEven([]any{1, 2, "x", 4.0, nil})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, got, "non-numeric elements should be skipped")
}

func TestFilterEven_InvalidArguments(t *testing.T) {
	for _, in := range []any{"x", nil, 42, map[string]int{"a": 1}} {
		_, err := FilterEven(in)
		require.Error(t, err, "FilterEven(%v) should fail", in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorContains(t, err, "argument must be a sequence")
	}
}

func TestPureOperationsAreIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, 7.0, Add(3, 4))

		product, err := Multiply(3, 4)
		require.NoError(t, err)
		assert.Equal(t, 12.0, product)

		assert.Equal(t, "Hello, Bob!", Greet("Bob"))

		evens, err := FilterEven([]int{2, 3})
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, evens)
	}
}

func TestNumber(t *testing.T) {
	for _, v := range []any{int(1), int8(1), int16(1), int32(1), int64(1), uint(1), uint8(1), uint16(1), uint32(1), uint64(1), float32(1), float64(1)} {
		got, ok := Number(v)
		assert.True(t, ok, "Number(%T) should succeed", v)
		assert.Equal(t, 1.0, got)
	}
	for _, v := range []any{"1", nil, true, []int{1}} {
		_, ok := Number(v)
		assert.False(t, ok, "Number(%T) should fail", v)
	}
}
