package arena_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/coredump-labs/bestfit"
)

// TestIntegrationPoolAcrossArenas drives a Pool through the full
// lifecycle spec §8 describes end to end: fill an arena, spill into a
// second one, release everything, and confirm through Metrics that no
// payload bytes remain in use.
func TestIntegrationPoolAcrossArenas(t *testing.T) {
	const arenaCapacity = 4096
	pool, err := arena.NewPool(arenaCapacity, 3)
	require.NoError(t, err)
	defer pool.Destroy()

	payload := uintptr(arenaCapacity) - arena.HeaderBytes

	first, err := pool.Allocate(payload)
	require.NoError(t, err)
	require.NotNil(t, first)

	m := pool.Metrics()
	require.Equal(t, 1, m.ProvisionedArenas)
	require.Equal(t, int(payload), m.TotalUsedBytes)

	// The first arena is exactly full; this must spill into a second.
	second, err := pool.Allocate(64)
	require.NoError(t, err)
	require.NotNil(t, second)

	m = pool.Metrics()
	require.Equal(t, 2, m.ProvisionedArenas)
	require.True(t, pool.Metrics().Utilization > 0)

	require.NoError(t, pool.Release(first, payload))
	require.NoError(t, pool.Release(second, 64))

	m = pool.Metrics()
	require.Equal(t, 0, m.TotalUsedBytes)
	require.Equal(t, 0.0, m.Utilization)
}

type widget struct {
	ID     int64
	Flags  uint32
	Weight float64
}

// TestIntegrationFacadeSharesUnderlyingPool checks that a Facade copy
// observes allocations and releases made through the original, the
// shared-ownership behavior spec §4.5 requires.
func TestIntegrationFacadeSharesUnderlyingPool(t *testing.T) {
	f1, err := arena.NewFacade[widget](1<<16, 2)
	require.NoError(t, err)
	defer f1.Close()

	f2 := f1
	require.Equal(t, f1, f2)

	w, err := f1.Allocate(4)
	require.NoError(t, err)
	require.NotNil(t, w)

	view := unsafe.Slice(w, 4)
	for i := range view {
		view[i] = widget{ID: int64(i), Flags: uint32(i), Weight: float64(i) * 1.5}
	}

	// A release issued through the copy must reach the same pool and
	// make the region reusable by a fresh allocation through f1.
	require.NoError(t, f2.Release(w, 4))

	w2, err := f1.Allocate(4)
	require.NoError(t, err)
	require.Equal(t, unsafe.Pointer(w), unsafe.Pointer(w2))
}

// TestIntegrationOversizedRequestNeverProvisions is an end-to-end check
// of spec §8 scenario 5 through the public Pool API only: a request
// larger than a single arena's capacity must report no error and must
// never cause a second arena to be mapped.
func TestIntegrationOversizedRequestNeverProvisions(t *testing.T) {
	pool, err := arena.NewPool(1024, 4)
	require.NoError(t, err)
	defer pool.Destroy()

	ptr, err := pool.Allocate(1 << 20)
	require.NoError(t, err)
	require.Nil(t, ptr)
	require.Equal(t, 1, pool.Metrics().ProvisionedArenas)
}
