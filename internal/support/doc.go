// Package support owns the shared runtime primitives used by every pallet.
//
// Ownership boundary:
// - dispatch capability
// - block, header and extrinsic shapes
// - counter type constraints
//
// Pallets do not know about blocks. The runtime decides whether an extrinsic
// failure aborts anything.
package support
