package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hiovec/fake"
	"github.com/momentics/hiovec/vector"
)

func TestShared(t *testing.T) {
	rec := &fake.Recorder[int]{}
	v := ints(t, 1, 2)
	v.SetDestructor(rec.Destructor()).SetContext("session")

	s := vector.Share(v)
	assert.Equal(t, 1, s.Refs())
	s.Retain().Retain()
	assert.Equal(t, 3, s.Refs())

	for i := 0; i < 2; i++ {
		ctx, destroyed := s.Release()
		assert.False(t, destroyed)
		assert.Nil(t, ctx)
	}
	assert.Zero(t, rec.Len())
	require.Same(t, v, s.Vector())

	ctx, destroyed := s.Release()
	assert.True(t, destroyed)
	assert.Equal(t, "session", ctx)
	assert.Equal(t, []int{2, 1}, rec.Items)
	assert.Nil(t, s.Vector())
	assert.Zero(t, s.Refs())

	_, destroyed = s.Release()
	assert.False(t, destroyed)
	s.Retain()
	assert.Zero(t, s.Refs())
}
