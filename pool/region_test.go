package pool

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hiovec/api"
)

func TestRegion_Slots(t *testing.T) {
	r, err := MapRegion(16, 8)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, 16, r.Slots())
	assert.Len(t, r.Bytes(), 128)

	slots, err := RegionSlots[uint64](r)
	require.NoError(t, err)
	require.Len(t, slots, 16)
	slots[15] = 42
	assert.Equal(t, uint64(42), slots[15])
}

func TestRegion_SlotSizeMismatch(t *testing.T) {
	r, err := MapRegion(4, 8)
	require.NoError(t, err)
	defer r.Close()

	_, err = RegionSlots[uint32](r)
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestRegion_Invalid(t *testing.T) {
	_, err := MapRegion(0, 8)
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestRegion_CloseTwice(t *testing.T) {
	r, err := MapRegion(1, 8)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	_, err = RegionSlots[uint64](r)
	assert.Error(t, err)
}
