package support

import "errors"

// ErrUnknownCall is returned when a call value has no dispatch arm.
var ErrUnknownCall = errors.New("support: unknown call")

// Dispatch routes a call to the matching pallet operation on behalf of caller.
// A nil error is a successful dispatch; any error leaves the pallet state unchanged.
type Dispatch[Caller, Call any] interface {
	Dispatch(caller Caller, call Call) error
}

// Unsigned covers the counter types a runtime can pick for block numbers and nonces.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
