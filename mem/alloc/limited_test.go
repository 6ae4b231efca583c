package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimited_Budget(t *testing.T) {
	lim := NewLimited(Heap{}, 64)
	assert.Equal(t, 64, lim.Max())

	l32, err := ArrayOf[int64](4)
	require.NoError(t, err)

	p1, err := lim.Allocate(l32)
	require.NoError(t, err)
	p2, err := lim.Allocate(l32)
	require.NoError(t, err)
	assert.Equal(t, 64, lim.InUse())

	_, err = lim.Allocate(l32)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 64, lim.InUse(), "failed request must not reserve bytes")

	require.NoError(t, lim.Deallocate(p1, l32))
	assert.Equal(t, 32, lim.InUse())
	require.NoError(t, lim.Deallocate(p2, l32))
	assert.Equal(t, 0, lim.InUse())
}

func TestLimited_InnerFailureReleasesReservation(t *testing.T) {
	lim := NewLimited(NewMapped(), 1<<20)
	l, err := ArrayOf[string](2)
	require.NoError(t, err)

	_, err = lim.Allocate(l)
	require.ErrorIs(t, err, ErrPointerData)
	assert.Equal(t, 0, lim.InUse())
}

func TestLimited_InnerDeallocateError(t *testing.T) {
	lim := NewLimited(NewMapped(), 1<<20)
	l, err := ArrayOf[int64](8)
	require.NoError(t, err)
	p, err := lim.Allocate(l)
	require.NoError(t, err)

	require.NoError(t, lim.Deallocate(p, l))
	require.ErrorIs(t, lim.Deallocate(p, l), ErrBadPointer)
	assert.Equal(t, 0, lim.InUse())
}
