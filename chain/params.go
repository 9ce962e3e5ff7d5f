// Package chain defines the protocol parameters shared by every Ethereum-like
// network this client can run.
//
// This package provides:
//   - Params: the immutable per-chain parameter record (network identifiers,
//     gas bounds, block reward, hard-fork transition heights)
//   - Schedule: the set of execution-semantics flags active at a given height
//   - Conversion of Params into an EVM chain configuration for execution
//
// Params is resolved once from the specification document and then shared by
// reference across the consensus engine, block validation and the genesis
// materializer. It must never be mutated after construction.
package chain

import (
	"encoding/json"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	ethparams "github.com/ethereum/go-ethereum/params"
)

const (
	// NeverTransition marks a hard fork that is not scheduled on this chain.
	// Comparisons against it keep the gated feature disabled at every height.
	NeverTransition uint64 = math.MaxUint64

	// DefaultSubprotocolName is the devp2p subprotocol used when the
	// specification document does not override it.
	DefaultSubprotocolName = "eth"

	// DefaultBlockhashContractGas is the gas budget allocated to the
	// block-hash oracle contract update when the document omits it.
	DefaultBlockhashContractGas uint64 = 1000000

	// DefaultNonceCapIncrement is the per-block nonce cap growth used by the
	// dust protection rules when the document omits it.
	DefaultNonceCapIncrement uint64 = 64

	// DefaultMaximumExtraDataSize bounds the header extra-data field when the
	// document omits it.
	DefaultMaximumExtraDataSize uint64 = 32
)

// DefaultBlockhashContractAddress is the address the block-hash oracle
// contract is expected at unless the document relocates it.
var DefaultBlockhashContractAddress = common.BytesToAddress([]byte{0xf0})

// ForkPoint pins a known canonical block, used as a checkpoint to tell apart
// networks that share a genesis but diverged later.
type ForkPoint struct {
	Number uint64      // height of the checkpoint block
	Hash   common.Hash // required hash of the block at that height
}

// Params holds the parameters common to Ethereum-like blockchains. The
// transition fields are activation heights; a value of NeverTransition means
// the fork never activates, while the bugfix transitions (EIP98Transition,
// EIP155Transition, ValidateReceiptsTransition) default to zero so that a
// freshly created chain carries the fixes from genesis.
//
// When adding a bugfix hard-fork parameter, extend ContainsBugfixHardFork
// accordingly.
type Params struct {
	// AccountStartNonce is the nonce every fresh account begins with.
	AccountStartNonce uint64
	// MaximumExtraDataSize bounds the header extra-data field, in bytes.
	MaximumExtraDataSize uint64
	// NetworkID identifies the devp2p network.
	NetworkID uint64
	// ChainID is used for replay-protected transaction signing. Defaults to
	// NetworkID when the document does not set it.
	ChainID uint64
	// SubprotocolName is the main devp2p subprotocol of the chain.
	SubprotocolName string
	// MinGasLimit is the lowest gas limit a block may declare.
	MinGasLimit uint64
	// GasLimitBoundDivisor bounds how much the gas limit may move per block.
	GasLimitBoundDivisor uint64
	// BlockReward is the base reward paid to a block author, in wei.
	BlockReward *big.Int
	// Registrar is the address of the name registrar contract, if any.
	Registrar common.Address
	// ForkBlock is an optional canonical checkpoint for network splits.
	ForkBlock *ForkPoint

	// EIP98Transition enables the EIP-98 state-root relaxation rules.
	EIP98Transition uint64
	// EIP155Transition enables replay-protected transaction signatures.
	EIP155Transition uint64
	// ValidateReceiptsTransition enables block receipts-root validation.
	ValidateReceiptsTransition uint64
	// EIP86Transition enables contract creation at deterministic addresses.
	EIP86Transition uint64
	// EIP140Transition enables the value-reverting termination opcode.
	EIP140Transition uint64
	// EIP210Transition switches block-hash lookups to the oracle contract.
	EIP210Transition uint64
	// EIP210ContractAddress is where the block-hash oracle lives.
	EIP210ContractAddress common.Address
	// EIP210ContractCode is the oracle bytecode deployed on transition.
	EIP210ContractCode []byte
	// EIP210ContractGas is the gas allocated to the oracle update call.
	EIP210ContractGas uint64
	// EIP211Transition enables return-data introspection opcodes.
	EIP211Transition uint64
	// EIP214Transition enables static (non-mutating) calls.
	EIP214Transition uint64
	// DustProtectionTransition enables removal of near-empty accounts.
	DustProtectionTransition uint64
	// NonceCapIncrement is the nonce cap growth per block once dust
	// protection is active.
	NonceCapIncrement uint64
	// RemoveDustContracts extends dust cleanup to contract code and storage.
	RemoveDustContracts bool
	// Wasm enables the wasm contract format.
	Wasm bool
}

// ContainsBugfixHardFork reports whether every on-by-default bugfix
// transition is scheduled at a non-zero height. A chain created from scratch
// leaves them all at zero and therefore carries the fixes from genesis.
func (p *Params) ContainsBugfixHardFork() bool {
	return p.EIP98Transition != 0 &&
		p.EIP155Transition != 0 &&
		p.ValidateReceiptsTransition != 0 &&
		p.EIP86Transition != 0 &&
		p.EIP140Transition != 0 &&
		p.EIP210Transition != 0 &&
		p.EIP211Transition != 0 &&
		p.EIP214Transition != 0 &&
		p.DustProtectionTransition != 0
}

// EvmChainConfig maps the parameter record onto an EVM chain configuration
// for executing genesis constructors and transactions. Transitions scheduled
// at NeverTransition map to nil fork blocks. Forks newer than the parameter
// model covers are disabled so that execution semantics stay a pure function
// of Params.
func (p *Params) EvmChainConfig() *ethparams.ChainConfig {
	cfg := *ethparams.AllEthashProtocolChanges

	cfg.ChainID = new(big.Int).SetUint64(p.ChainID)
	cfg.HomesteadBlock = big.NewInt(0)
	cfg.DAOForkBlock = nil
	cfg.DAOForkSupport = false
	cfg.EIP150Block = big.NewInt(0)
	cfg.EIP155Block = transitionBlock(p.EIP155Transition)
	cfg.EIP158Block = big.NewInt(0)
	// The metropolis feature set becomes fully available only once every one
	// of its member transitions has activated.
	cfg.ByzantiumBlock = transitionBlock(maxTransition(
		p.EIP140Transition, p.EIP211Transition, p.EIP214Transition))
	cfg.ConstantinopleBlock = nil
	cfg.PetersburgBlock = nil
	cfg.IstanbulBlock = nil
	cfg.MuirGlacierBlock = nil
	cfg.BerlinBlock = nil
	cfg.LondonBlock = nil

	return &cfg
}

// Copy returns a deep copy of the parameter record. Params contains pointer
// fields that would otherwise be shared between copies.
func (p Params) Copy() Params {
	cp := p
	if p.BlockReward != nil {
		cp.BlockReward = new(big.Int).Set(p.BlockReward)
	}
	if p.ForkBlock != nil {
		fork := *p.ForkBlock
		cp.ForkBlock = &fork
	}
	if p.EIP210ContractCode != nil {
		cp.EIP210ContractCode = append([]byte(nil), p.EIP210ContractCode...)
	}
	return cp
}

// String returns a JSON dump of the parameters for logging and debugging.
func (p Params) String() string {
	b, _ := json.Marshal(&p)
	return string(b)
}

func transitionBlock(transition uint64) *big.Int {
	if transition == NeverTransition {
		return nil
	}
	return new(big.Int).SetUint64(transition)
}

func maxTransition(transitions ...uint64) uint64 {
	var max uint64
	for _, t := range transitions {
		if t > max {
			max = t
		}
	}
	return max
}
