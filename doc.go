// Package arena implements a best-fit heap allocator for a single
// process address space.
//
// # Overview
//
// The allocator carves large memory arenas obtained from the OS into
// variable-size allocations, returns them to callers, and reclaims
// them on release. Free regions of each arena are tracked in a
// size-ordered red-black tree so that allocation always picks the
// smallest free region that satisfies the request (best fit),
// minimizing internal fragmentation. Every region, free or used, is
// also threaded through an address-ordered doubly-linked list so that
// releasing a region can coalesce it with its physically adjacent
// neighbors in O(1), without walking the tree.
//
// A Pool routes requests across up to a fixed number of arenas,
// provisioning a new one only when no existing arena can satisfy a
// request. Facade is a thin generic wrapper over a Pool for callers
// that want typed pointers instead of raw byte counts.
//
// # Basic Usage
//
//	pool, err := arena.NewPool(0, 0) // package defaults
//	if err != nil {
//		// handle mapping failure
//	}
//	defer pool.Destroy()
//
//	ptr, err := pool.Allocate(256)
//	if err != nil {
//		// invalid argument (bytes == 0)
//	}
//	if ptr == nil {
//		// out of capacity: every arena full, max arenas reached
//	}
//
//	if err := pool.Release(ptr, 256); err != nil {
//		// ptr not owned by this pool
//	}
//
// # Typed Facade
//
//	type Widget struct{ X, Y int64 }
//
//	f, err := arena.NewFacade[Widget](0, 0)
//	if err != nil {
//		// handle mapping failure
//	}
//	defer f.Close()
//
//	w, err := f.Allocate(1)
//	*w = Widget{X: 1, Y: 2}
//	f.Release(w, 1)
//
// Facade values are cheap to copy: every copy shares the same
// underlying pool, and the pool is destroyed once: by the first Close
// call made through any copy (or, failing that, when the last copy is
// garbage collected).
//
// # Concurrency
//
// The allocator is single-threaded. All state in an Arena (its tree,
// spatial list, and region headers) and in a Pool (its arena array and
// watermark) is mutated without synchronization. Concurrent use by
// multiple goroutines is undefined.
//
// # Memory Layout
//
// Each arena is one contiguous OS mapping. A region's header
// (HeaderBytes, currently 48 bytes on 64-bit platforms) precedes its
// payload; splitting a free region on allocation and coalescing
// adjacent free regions on release keep external fragmentation low
// without ever moving a live payload.
//
// # Performance Characteristics
//
//   - Allocate: O(log n) tree lookup per arena queried, n = free regions in that arena
//   - Release: O(log n) tree remove/insert, O(1) neighbor coalescing
//   - Destroy: O(1) per arena (one unmap syscall)
package arena
