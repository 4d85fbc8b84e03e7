package runtime

// State is a point-in-time copy of every pallet's storage.
type State struct {
	BlockNumber BlockNumber           `json:"block_number"`
	Nonces      map[AccountID]Nonce   `json:"nonces"`
	Balances    map[AccountID]string  `json:"balances"`
	Claims      map[Content]AccountID `json:"claims"`
}

// State snapshots the runtime. Balances are rendered in decimal.
func (r *Runtime) State() State {
	stored := r.balances.Balances()
	bals := make(map[AccountID]string, len(stored))
	for who, b := range stored {
		bals[who] = b.Dec()
	}
	return State{
		BlockNumber: r.system.BlockNumber(),
		Nonces:      r.system.Nonces(),
		Balances:    bals,
		Claims:      r.proofOfExistence.Claims(),
	}
}
