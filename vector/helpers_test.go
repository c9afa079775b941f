package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hiovec/vector"
)

// ints builds an owned vector holding exactly xs.
func ints(t *testing.T, xs ...int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.NewSized[int](len(xs))
	require.NoError(t, err)
	for _, x := range xs {
		require.NoError(t, v.Push(x))
	}
	return v
}

// contents copies the live items so later edits do not alias.
func contents[T any](v *vector.Vector[T]) []T {
	return append([]T{}, v.Data()...)
}
