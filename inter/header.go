// Package inter defines the internal block primitives shared between the
// chain specification and its consumers. The Header type here differs from
// the go-ethereum header in one way: the consensus seal is a variable-length
// list of opaque items rather than the fixed mix-hash/nonce pair, so every
// engine family (proof of work, authority round, BFT) can express its seal
// in the same header layout. When the seal happens to be [mixHash, nonce]
// the encoding is byte-compatible with an Ethereum header.
package inter

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Header is a block header with an engine-opaque seal.
type Header struct {
	ParentHash  common.Hash
	UncleHash   common.Hash
	Coinbase    common.Address
	Root        common.Hash
	TxHash      common.Hash
	ReceiptHash common.Hash
	Bloom       types.Bloom
	Difficulty  *big.Int
	Number      *big.Int
	GasLimit    uint64
	GasUsed     uint64
	Time        uint64
	Extra       []byte

	// Seal items are appended raw at the end of the header list, exactly
	// where an Ethereum header carries mixHash and nonce.
	Seal []rlp.RawValue `rlp:"tail"`
}

// Hash returns the keccak256 hash of the RLP-encoded header.
func (h *Header) Hash() common.Hash {
	enc, err := rlp.EncodeToBytes(h)
	if err != nil {
		panic("header is not RLP-encodable: " + err.Error())
	}
	return crypto.Keccak256Hash(enc)
}

// Block groups a header with its transaction and uncle lists. The genesis
// block encodes both lists empty.
type Block struct {
	Header *Header
	Txs    []*types.Transaction
	Uncles []*Header
}

// NewBlock returns a block around the header with empty body lists.
func NewBlock(h *Header) *Block {
	return &Block{Header: h, Txs: []*types.Transaction{}, Uncles: []*Header{}}
}
