package arena

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// sharedPool is the handle a Facade's copies share; it keeps no count.
// Go has no copy constructors to intercept an implicit struct copy, so
// unlike the C++ shape spec §4.5 describes, sharing falls out for free
// from Facade holding only a pointer to this struct: assigning a
// Facade value copies the pointer, not the pool. closed guards against
// the pool being destroyed twice when both an explicit Close and the
// GC finalizer race to clean it up.
type sharedPool struct {
	pool   *Pool
	closed atomic.Bool
}

func (s *sharedPool) close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.pool.Destroy()
}

// Facade is a zero-logic typed view over a Pool: it multiplies an
// element count by sizeof(T) and delegates to the pool, per spec §4.5.
// Facade values are cheap to copy; every copy shares the same pool
// (two copies with the same handle compare equal with ==) and may
// release allocations made through any other copy.
type Facade[T any] struct {
	shared *sharedPool
}

// NewFacade creates a Facade backed by a fresh Pool of up to maxArenas
// arenas of arenaCapacity bytes each.
func NewFacade[T any](arenaCapacity uintptr, maxArenas int) (Facade[T], error) {
	pool, err := NewPool(arenaCapacity, maxArenas)
	if err != nil {
		return Facade[T]{}, err
	}
	sp := &sharedPool{pool: pool}
	runtime.SetFinalizer(sp, func(s *sharedPool) {
		_ = s.close()
	})
	return Facade[T]{shared: sp}, nil
}

// Close destroys the underlying pool. Safe to call from any copy, and
// safe to call more than once; only the first call has any effect.
func (f Facade[T]) Close() error {
	return f.shared.close()
}

// Allocate delegates count*sizeof(T) bytes to the pool and returns a
// pointer to the first element. The Facade performs no construction of
// T; the caller is responsible for initializing the memory.
func (f Facade[T]) Allocate(count int) (*T, error) {
	if count <= 0 {
		return nil, ErrInvalidArgument
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	ptr, err := f.shared.pool.Allocate(uintptr(count) * elemSize)
	if err != nil {
		return nil, err
	}
	if ptr == nil {
		return nil, nil
	}
	return (*T)(ptr), nil
}

// Release delegates count*sizeof(T) bytes to the pool. The Facade
// performs no destruction of T; the caller is responsible for that
// before calling Release.
func (f Facade[T]) Release(ptr *T, count int) error {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	err := f.shared.pool.Release(unsafe.Pointer(ptr), uintptr(count)*elemSize)
	runtime.KeepAlive(f.shared)
	return err
}
