package arena

import "errors"

// ErrInvalidArgument is returned when a caller passes a value that can
// never be satisfied: a zero-byte allocation request, or a release of a
// pointer this pool (or facade) never handed out.
var ErrInvalidArgument = errors.New("arena: invalid argument")

// ErrOutOfMemory is returned when the underlying OS mapping call fails
// while provisioning a new arena. The pool is left unchanged.
var ErrOutOfMemory = errors.New("arena: out of memory")
