package support

// Header carries the block number the submitter expects the runtime to reach.
type Header[BlockNumber Unsigned] struct {
	BlockNumber BlockNumber
}

// Extrinsic is one externally submitted call envelope.
type Extrinsic[Caller, Call any] struct {
	Caller Caller
	Call   Call
}

// Block is an ordered batch of extrinsics under a single header.
type Block[BlockNumber Unsigned, Caller, Call any] struct {
	Header     Header[BlockNumber]
	Extrinsics []Extrinsic[Caller, Call]
}
