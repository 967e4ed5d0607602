package arena

import (
	"fmt"
	"unsafe"

	"github.com/google/uuid"
)

// DefaultArenaCapacity is the default size of a single arena mapping
// (128 MiB), one of the two revisions spec §6 cites as a non-normative
// default.
const DefaultArenaCapacity uintptr = 128 << 20

// Arena owns one contiguous OS mapping, partitioned into regions. It
// tracks free regions in a size-ordered tree and threads every region
// (free or used) through an address-ordered spatial list for O(1)
// coalescing, per spec §4.3. Not goroutine-safe; concurrent allocation
// is an explicit non-goal.
type Arena struct {
	id       uuid.UUID
	base     unsafe.Pointer
	capacity uintptr // total mapped bytes, including the first region's header

	tree tree
	head *region // first region; always at base

	usedPayload     uintptr
	regionCount     int
	freeRegionCount int
}

// newArena maps capacity bytes from the OS and carves them into one
// free region spanning capacity-HeaderBytes payload bytes.
func newArena(capacity uintptr) (*Arena, error) {
	if capacity <= HeaderBytes {
		return nil, fmt.Errorf("%w: arena capacity %d must exceed header size %d", ErrInvalidArgument, capacity, HeaderBytes)
	}

	ptr, err := mapMemory(capacity)
	if err != nil {
		return nil, err
	}

	root := (*region)(ptr)
	root.prevSpatial = nil
	root.nextSpatial = nil
	root.left, root.right, root.parent = nil, nil, nil
	root.sizeFlags = 0
	root.setSize(capacity - HeaderBytes)
	root.setFree()
	root.setBlack()

	a := &Arena{
		id:              uuid.New(),
		base:            ptr,
		capacity:        capacity,
		head:            root,
		regionCount:     1,
		freeRegionCount: 1,
	}
	a.tree.root = root
	return a, nil
}

func (a *Arena) baseAddr() uintptr { return uintptr(a.base) }

// payloadCapacity is the total payload bytes this arena could ever
// carve up: capacity minus the one header every arena always carries
// for its first region.
func (a *Arena) payloadCapacity() uintptr { return a.capacity - HeaderBytes }

// contains reports whether ptr falls within this arena's mapping.
func (a *Arena) contains(ptr unsafe.Pointer) bool {
	p := uintptr(ptr)
	base := a.baseAddr()
	return p >= base && p < base+a.capacity
}

// findBestFit returns the smallest free region with payload size >=
// bytes, or nil if this arena cannot satisfy the request.
func (a *Arena) findBestFit(bytes uintptr) *region {
	return a.tree.lowerBound(bytes)
}

// allocateRegion removes r (obtained from findBestFit on this arena)
// from the tree, splits it if the remainder would be worth keeping,
// marks it used, and returns a pointer to its payload.
func (a *Arena) allocateRegion(r *region, bytes uintptr) unsafe.Pointer {
	a.tree.remove(r)
	a.freeRegionCount--

	if r.size() >= bytes+HeaderBytes+1 {
		remainder := r.size() - bytes - HeaderBytes
		tailOffset := uintptr(unsafe.Pointer(r)) - a.baseAddr() + HeaderBytes + bytes
		tail := regionAt(a.baseAddr(), tailOffset)

		tail.left, tail.right, tail.parent = nil, nil, nil
		tail.sizeFlags = 0
		tail.setSize(remainder)
		tail.setFree()

		tail.prevSpatial = r
		tail.nextSpatial = r.nextSpatial
		if r.nextSpatial != nil {
			r.nextSpatial.prevSpatial = tail
		}
		r.nextSpatial = tail

		r.setSize(bytes)

		a.tree.insert(tail)
		a.regionCount++
		a.freeRegionCount++
	}

	r.setUsed()
	a.usedPayload += r.size()
	return r.payload()
}

// release marks the region backing ptr free, coalesces it with any
// free spatial neighbor, and reinserts the surviving region into the
// tree, per spec §4.3.
func (a *Arena) release(ptr unsafe.Pointer) {
	r := regionFromPayload(ptr)
	a.usedPayload -= r.size()
	r.setFree()

	if next := r.nextSpatial; next != nil && next.isFree() {
		a.tree.remove(next)
		a.freeRegionCount--
		a.regionCount--

		r.setSize(r.size() + HeaderBytes + next.size())
		r.nextSpatial = next.nextSpatial
		if next.nextSpatial != nil {
			next.nextSpatial.prevSpatial = r
		}
	}

	if prev := r.prevSpatial; prev != nil && prev.isFree() {
		a.tree.remove(prev)
		a.freeRegionCount--
		a.regionCount--

		prev.setSize(prev.size() + HeaderBytes + r.size())
		prev.nextSpatial = r.nextSpatial
		if r.nextSpatial != nil {
			r.nextSpatial.prevSpatial = prev
		}
		r = prev
	}

	a.tree.insert(r)
	a.freeRegionCount++
}

// destroy returns the arena's entire mapping to the OS in one call.
// Every region header inside becomes invalid.
func (a *Arena) destroy() error {
	return unmapMemory(a.base, a.capacity)
}
