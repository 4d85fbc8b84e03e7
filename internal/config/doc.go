// Package config decodes chain files.
//
// A chain file is TOML: a [genesis] table of starting balances and an ordered
// [[blocks]] array. Each block holds [[blocks.extrinsics]] entries naming a
// caller, a call ("balances.transfer", "proof_of_existence.create_claim",
// "proof_of_existence.revoke_claim") and that call's fields. Amounts are
// decimal strings so the full balance range fits. Omitted block numbers
// default to the block's position, starting at 1.
package config
