// Package genesis holds the literal description of a chain's genesis block:
// the header field values, the opaque consensus seal, and the initial account
// ledger. The package is data only; materializing the described state into a
// trie is the job of the evmcore package.
package genesis

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// Descriptor carries the genesis block fields exactly as the specification
// document declares them. The seal is kept as the concatenation of its
// RLP-encoded items, opaque to everything but the consensus engine.
type Descriptor struct {
	// ParentHash of the genesis block, normally the zero hash.
	ParentHash common.Hash
	// Author receives the block reward of the genesis block.
	Author common.Address
	// Difficulty of the genesis block.
	Difficulty *big.Int
	// GasLimit of the genesis block.
	GasLimit uint64
	// GasUsed by the genesis block, normally zero.
	GasUsed uint64
	// Timestamp of the genesis block, seconds since the Unix epoch.
	Timestamp uint64
	// TxRoot is the transactions root, normally the empty-trie root.
	TxRoot common.Hash
	// ReceiptsRoot is the receipts root, normally the empty-trie root.
	ReceiptsRoot common.Hash
	// ExtraData is the free-form header extra field.
	ExtraData []byte
	// SealRLP is every seal item, expressed as RLP, concatenated.
	SealRLP []byte
	// StateRoot is an optional precomputed genesis state root supplied by
	// the document. When set, materialization is skipped at load time.
	StateRoot *common.Hash
}

// SealFields splits the concatenated seal encoding back into its component
// raw items, in order.
func (d *Descriptor) SealFields() ([]rlp.RawValue, error) {
	var fields []rlp.RawValue
	buf := d.SealRLP
	for len(buf) > 0 {
		_, _, rest, err := rlp.Split(buf)
		if err != nil {
			return nil, err
		}
		item := buf[:len(buf)-len(rest)]
		fields = append(fields, rlp.RawValue(append([]byte(nil), item...)))
		buf = rest
	}
	return fields, nil
}
