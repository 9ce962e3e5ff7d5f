package chainjson

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// Params is the params section of the document. Pointer fields distinguish
// "absent" from "zero"; the spec package applies the documented defaults.
type Params struct {
	AccountStartNonce    *math.HexOrDecimal64  `json:"accountStartNonce,omitempty"`
	MaximumExtraDataSize *math.HexOrDecimal64  `json:"maximumExtraDataSize,omitempty"`
	NetworkID            math.HexOrDecimal64   `json:"networkID"`
	ChainID              *math.HexOrDecimal64  `json:"chainID,omitempty"`
	SubprotocolName      *string               `json:"subprotocolName,omitempty"`
	MinGasLimit          math.HexOrDecimal64   `json:"minGasLimit"`
	GasLimitBoundDivisor math.HexOrDecimal64   `json:"gasLimitBoundDivisor"`
	BlockReward          *math.HexOrDecimal256 `json:"blockReward,omitempty"`
	Registrar            *common.Address       `json:"registrar,omitempty"`

	// Fork checkpoint: both fields must be present for the checkpoint to
	// take effect.
	ForkBlock     *math.HexOrDecimal64 `json:"forkBlock,omitempty"`
	ForkCanonHash *common.Hash         `json:"forkCanonHash,omitempty"`

	EIP98Transition            *math.HexOrDecimal64 `json:"eip98Transition,omitempty"`
	EIP155Transition           *math.HexOrDecimal64 `json:"eip155Transition,omitempty"`
	ValidateReceiptsTransition *math.HexOrDecimal64 `json:"validateReceiptsTransition,omitempty"`
	EIP86Transition            *math.HexOrDecimal64 `json:"eip86Transition,omitempty"`
	EIP140Transition           *math.HexOrDecimal64 `json:"eip140Transition,omitempty"`
	EIP210Transition           *math.HexOrDecimal64 `json:"eip210Transition,omitempty"`
	EIP210ContractAddress      *common.Address      `json:"eip210ContractAddress,omitempty"`
	EIP210ContractCode         hexutil.Bytes        `json:"eip210ContractCode,omitempty"`
	EIP210ContractGas          *math.HexOrDecimal64 `json:"eip210ContractGas,omitempty"`
	EIP211Transition           *math.HexOrDecimal64 `json:"eip211Transition,omitempty"`
	EIP214Transition           *math.HexOrDecimal64 `json:"eip214Transition,omitempty"`
	DustProtectionTransition   *math.HexOrDecimal64 `json:"dustProtectionTransition,omitempty"`
	NonceCapIncrement          *math.HexOrDecimal64 `json:"nonceCapIncrement,omitempty"`
	RemoveDustContracts        bool                 `json:"removeDustContracts,omitempty"`
	Wasm                       bool                 `json:"wasm,omitempty"`
}
