package spec

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/rony4d/go-chainspec/builtin"
	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/chain/genesis"
	"github.com/rony4d/go-chainspec/chainjson"
	"github.com/rony4d/go-chainspec/consensus"
	"github.com/rony4d/go-chainspec/evmcore"
)

// Load reads a chain specification document and resolves it into a Spec.
// Document errors and engine construction errors are fatal; the memoized
// genesis state root is either adopted from the document or materialized
// in memory here.
func Load(r io.Reader) (*Spec, error) {
	doc, err := chainjson.Load(r)
	if err != nil {
		return nil, err
	}
	return fromJSON(doc)
}

func fromJSON(doc *chainjson.Spec) (*Spec, error) {
	params := paramsFromJSON(doc.Params)
	builtins, pod, constructors := accountsFromJSON(doc.Accounts)

	descriptor, err := genesisFromJSON(doc.Genesis)
	if err != nil {
		return nil, fmt.Errorf("chain spec %q: %v", doc.Name, err)
	}

	engine, err := consensus.New(doc.Engine, params, builtins)
	if err != nil {
		return nil, fmt.Errorf("chain spec %q: %v", doc.Name, err)
	}

	s := &Spec{
		Name:         doc.Name,
		DataDir:      dataDir(doc),
		Engine:       engine,
		Nodes:        append([]string(nil), doc.Nodes...),
		genesis:      descriptor,
		genesisState: pod,
		constructors: constructors,
	}

	if descriptor.StateRoot != nil {
		s.stateRoot = *descriptor.StateRoot
	} else {
		root, err := evmcore.ApplyGenesis(rawdb.NewMemoryDatabase(), pod, constructors, s.genesisEnv())
		if err != nil {
			return nil, fmt.Errorf("chain spec %q: materializing genesis: %v", doc.Name, err)
		}
		s.stateRoot = root
	}
	return s, nil
}

func dataDir(doc *chainjson.Spec) string {
	if doc.DataDir != "" {
		return doc.DataDir
	}
	return doc.Name
}

// paramsFromJSON resolves the params section, applying the documented
// defaults. The bugfix transitions default to zero (active from genesis);
// the feature transitions default to never.
func paramsFromJSON(p chainjson.Params) chain.Params {
	networkID := uint64(p.NetworkID)

	params := chain.Params{
		AccountStartNonce:    optUint64(p.AccountStartNonce, 0),
		MaximumExtraDataSize: optUint64(p.MaximumExtraDataSize, chain.DefaultMaximumExtraDataSize),
		NetworkID:            networkID,
		ChainID:              optUint64(p.ChainID, networkID),
		SubprotocolName:      chain.DefaultSubprotocolName,
		MinGasLimit:          uint64(p.MinGasLimit),
		GasLimitBoundDivisor: uint64(p.GasLimitBoundDivisor),
		BlockReward:          new(big.Int),

		EIP98Transition:            optUint64(p.EIP98Transition, 0),
		EIP155Transition:           optUint64(p.EIP155Transition, 0),
		ValidateReceiptsTransition: optUint64(p.ValidateReceiptsTransition, 0),
		EIP86Transition:            optUint64(p.EIP86Transition, chain.NeverTransition),
		EIP140Transition:           optUint64(p.EIP140Transition, chain.NeverTransition),
		EIP210Transition:           optUint64(p.EIP210Transition, chain.NeverTransition),
		EIP210ContractAddress:      chain.DefaultBlockhashContractAddress,
		EIP210ContractCode:         p.EIP210ContractCode,
		EIP210ContractGas:          optUint64(p.EIP210ContractGas, chain.DefaultBlockhashContractGas),
		EIP211Transition:           optUint64(p.EIP211Transition, chain.NeverTransition),
		EIP214Transition:           optUint64(p.EIP214Transition, chain.NeverTransition),
		DustProtectionTransition:   optUint64(p.DustProtectionTransition, chain.NeverTransition),
		NonceCapIncrement:          optUint64(p.NonceCapIncrement, chain.DefaultNonceCapIncrement),
		RemoveDustContracts:        p.RemoveDustContracts,
		Wasm:                       p.Wasm,
	}
	if p.SubprotocolName != nil {
		params.SubprotocolName = *p.SubprotocolName
	}
	if p.BlockReward != nil {
		params.BlockReward = (*big.Int)(p.BlockReward)
	}
	if p.Registrar != nil {
		params.Registrar = *p.Registrar
	}
	if p.EIP210ContractAddress != nil {
		params.EIP210ContractAddress = *p.EIP210ContractAddress
	}
	if p.ForkBlock != nil && p.ForkCanonHash != nil {
		params.ForkBlock = &chain.ForkPoint{
			Number: uint64(*p.ForkBlock),
			Hash:   *p.ForkCanonHash,
		}
	}
	return params
}

// accountsFromJSON splits the accounts section into the builtin table, the
// predefined account ledger, and the constructor list in declaration order.
// An account may contribute to several of the three.
func accountsFromJSON(accounts chainjson.Accounts) (builtin.Table, genesis.PodState, []genesis.Constructor) {
	builtins := builtin.Table{}
	pod := genesis.PodState{}
	var constructors []genesis.Constructor

	for _, addr := range accounts.Addresses() {
		account, _ := accounts.Get(addr)

		if account.Builtin != nil {
			builtins[addr] = builtinFromJSON(account.Builtin)
		}
		if len(account.Constructor) > 0 {
			constructors = append(constructors, genesis.Constructor{
				Address: addr,
				Code:    append([]byte(nil), account.Constructor...),
			})
		}

		entry := genesis.Account{Nonce: optUint64(account.Nonce, 0)}
		if account.Balance != nil {
			entry.Balance = (*big.Int)(account.Balance)
		}
		if len(account.Code) > 0 {
			entry.Code = append([]byte(nil), account.Code...)
		}
		if len(account.Storage) > 0 {
			entry.Storage = make(map[common.Hash]common.Hash, len(account.Storage))
			for key, value := range account.Storage {
				entry.Storage[key.Hash()] = value.Hash()
			}
		}
		if entry.Balance != nil || entry.Nonce != 0 || len(entry.Code) > 0 || len(entry.Storage) > 0 {
			pod[addr] = entry
		}
	}
	return builtins, pod, constructors
}

func builtinFromJSON(b *chainjson.Builtin) *builtin.Contract {
	contract := &builtin.Contract{
		Name:       b.Name,
		ActivateAt: optUint64(b.ActivateAt, 0),
	}
	if b.Pricing.Linear != nil {
		contract.Linear = &builtin.LinearPricing{
			Base: b.Pricing.Linear.Base,
			Word: b.Pricing.Linear.Word,
		}
	}
	if b.Pricing.Modexp != nil {
		contract.ModexpDivisor = b.Pricing.Modexp.Divisor
	}
	return contract
}

// genesisFromJSON resolves the genesis section into a descriptor, encoding
// the engine-specific seal into its RLP item concatenation.
func genesisFromJSON(g chainjson.Genesis) (genesis.Descriptor, error) {
	sealEnc, err := sealRLP(g.Seal)
	if err != nil {
		return genesis.Descriptor{}, err
	}

	descriptor := genesis.Descriptor{
		Difficulty:   new(big.Int),
		GasLimit:     uint64(g.GasLimit),
		GasUsed:      optUint64(g.GasUsed, 0),
		Timestamp:    optUint64(g.Timestamp, 0),
		TxRoot:       types.EmptyRootHash,
		ReceiptsRoot: types.EmptyRootHash,
		ExtraData:    append([]byte(nil), g.ExtraData...),
		SealRLP:      sealEnc,
		StateRoot:    g.StateRoot,
	}
	if g.Difficulty != nil {
		descriptor.Difficulty = (*big.Int)(g.Difficulty)
	}
	if g.Author != nil {
		descriptor.Author = *g.Author
	}
	if g.ParentHash != nil {
		descriptor.ParentHash = *g.ParentHash
	}
	if g.TransactionsRoot != nil {
		descriptor.TxRoot = *g.TransactionsRoot
	}
	if g.ReceiptsRoot != nil {
		descriptor.ReceiptsRoot = *g.ReceiptsRoot
	}
	return descriptor, nil
}

// sealRLP encodes the seal variant into the concatenation of its
// RLP-encoded items. The generic variant carries that concatenation
// pre-encoded and passes through untouched.
func sealRLP(seal chainjson.Seal) ([]byte, error) {
	switch {
	case seal.Ethereum != nil:
		return concatRLP(seal.Ethereum.MixHash, []byte(seal.Ethereum.Nonce))
	case seal.AuthorityRound != nil:
		return concatRLP(uint64(seal.AuthorityRound.Step), []byte(seal.AuthorityRound.Signature))
	case seal.Tendermint != nil:
		precommits := make([][]byte, len(seal.Tendermint.Precommits))
		for i, p := range seal.Tendermint.Precommits {
			precommits[i] = p
		}
		return concatRLP(uint64(seal.Tendermint.Round), []byte(seal.Tendermint.Proposal), precommits)
	case seal.Generic != nil:
		return append([]byte(nil), seal.Generic...), nil
	}
	return nil, nil
}

func concatRLP(items ...interface{}) ([]byte, error) {
	var out []byte
	for _, item := range items {
		enc, err := rlp.EncodeToBytes(item)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return out, nil
}

func optUint64(v *gethmath.HexOrDecimal64, def uint64) uint64 {
	if v == nil {
		return def
	}
	return uint64(*v)
}
