package arena

import "unsafe"

// region is the header every allocation tracking unit carries, embedded
// at the start of its storage inside an arena's mapping. The same
// struct serves as both a tree node (when free) and a spatial-list node
// (always); the tree fields are meaningless once the region is marked
// used, mirroring original_source/halloc/includes/Block.hpp's MemoryNode,
// whose left/right/parent fields the allocator simply stops consulting
// once the used bit is set.
type region struct {
	prevSpatial *region
	nextSpatial *region

	left   *region
	right  *region
	parent *region

	// sizeFlags packs payload size (low 62 bits), the used/free flag
	// (bit 62) and the tree color (bit 63, meaningful only while free)
	// into one machine word, per spec §4.1.
	sizeFlags uint64
}

// HeaderBytes is the storage footprint of a region header. Every split,
// coalesce, and arena-construction size computation accounts for it.
const HeaderBytes = unsafe.Sizeof(region{})

const (
	colorBit uint64 = 1 << 63
	usedBit  uint64 = 1 << 62
	sizeMask uint64 = usedBit - 1 // low 62 bits
)

func (r *region) size() uintptr {
	return uintptr(r.sizeFlags & sizeMask)
}

// setSize rewrites the payload-size bits, preserving the flag bits.
func (r *region) setSize(n uintptr) {
	r.sizeFlags = (r.sizeFlags &^ sizeMask) | (uint64(n) & sizeMask)
}

func (r *region) isFree() bool { return r.sizeFlags&usedBit == 0 }
func (r *region) isUsed() bool { return !r.isFree() }
func (r *region) setUsed()     { r.sizeFlags |= usedBit }
func (r *region) setFree()     { r.sizeFlags &^= usedBit }

func (r *region) isRed() bool { return r.sizeFlags&colorBit != 0 }
func (r *region) isBlack() bool {
	return !r.isRed()
}
func (r *region) setRed()   { r.sizeFlags |= colorBit }
func (r *region) setBlack() { r.sizeFlags &^= colorBit }

// payload returns the pointer handed out to callers: the byte
// immediately after the header.
func (r *region) payload() unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(r)) + HeaderBytes)
}

// regionFromPayload recovers a region header from a pointer previously
// returned by an allocation.
func regionFromPayload(ptr unsafe.Pointer) *region {
	return (*region)(unsafe.Pointer(uintptr(ptr) - HeaderBytes))
}

// regionAt interprets the bytes at base+offset within a mapping as a
// region header.
func regionAt(base uintptr, offset uintptr) *region {
	return (*region)(unsafe.Pointer(base + offset))
}
