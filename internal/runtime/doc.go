// Package runtime composes the system, balances and proof-of-existence pallets.
//
// Ownership boundary:
// - concrete account, balance, block number, nonce and content types
// - the runtime call union and its dispatch
// - block execution
//
// Block execution order:
// - increment block number -> header check -> per extrinsic: increment nonce, dispatch
//
// A header mismatch aborts the block before any extrinsic runs. A failing
// extrinsic is recorded in the receipt and execution moves on to the next one.
//
// Runtime is not safe for concurrent use. Embeddings that accept blocks from
// several goroutines serialize them through internal/service.
package runtime
