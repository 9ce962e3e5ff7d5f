// Package spec turns a chain specification document into the live objects the
// rest of the client consumes: resolved chain parameters, a constructed
// consensus engine, the genesis header and block, and a materialized genesis
// state root. A Spec is loaded once and then shared by reference; the only
// mutable piece, the memoized state root, is guarded by its own lock.
package spec

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/rony4d/go-chainspec/chain"
	"github.com/rony4d/go-chainspec/chain/genesis"
	"github.com/rony4d/go-chainspec/chainjson"
	"github.com/rony4d/go-chainspec/consensus"
	"github.com/rony4d/go-chainspec/evmcore"
	"github.com/rony4d/go-chainspec/inter"
)

// Spec is a loaded chain specification.
type Spec struct {
	// Name of the chain, as the document declares it.
	Name string
	// DataDir is the chain's data directory suffix.
	DataDir string
	// Engine is the consensus engine the document selected. It also owns
	// the resolved chain parameters.
	Engine consensus.Engine
	// Nodes are the bootnode enode URLs of the chain.
	Nodes []string

	genesis      genesis.Descriptor
	genesisState genesis.PodState
	constructors []genesis.Constructor

	// stateRootMu guards the memoized genesis state root. Readers take the
	// read lock; the two mutators below recompute under the write lock.
	stateRootMu sync.RWMutex
	stateRoot   common.Hash
}

// Params returns the resolved chain parameters.
func (s *Spec) Params() *chain.Params { return s.Engine.Params() }

// NetworkID returns the devp2p network id.
func (s *Spec) NetworkID() uint64 { return s.Params().NetworkID }

// ChainID returns the transaction signing chain id.
func (s *Spec) ChainID() uint64 { return s.Params().ChainID }

// SubprotocolName returns the main devp2p subprotocol of the chain.
func (s *Spec) SubprotocolName() string { return s.Params().SubprotocolName }

// ForkBlock returns the canonical checkpoint of the chain, if any.
func (s *Spec) ForkBlock() *chain.ForkPoint { return s.Params().ForkBlock }

// GenesisState returns a copy of the predefined genesis accounts.
func (s *Spec) GenesisState() genesis.PodState { return s.genesisState.Copy() }

// Constructors returns the genesis constructors in declaration order.
func (s *Spec) Constructors() []genesis.Constructor {
	return append([]genesis.Constructor(nil), s.constructors...)
}

// StateRoot returns the memoized genesis state root.
func (s *Spec) StateRoot() common.Hash {
	s.stateRootMu.RLock()
	defer s.stateRootMu.RUnlock()
	return s.stateRoot
}

// GenesisHeader builds the genesis header from the descriptor and the
// memoized state root. A malformed seal is logged and rendered empty rather
// than failing header construction; VerifySeal catches it downstream.
func (s *Spec) GenesisHeader() *inter.Header {
	seal, err := s.genesis.SealFields()
	if err != nil {
		log.Warn("Genesis seal is malformed, rendering it empty", "chain", s.Name, "err", err)
		seal = nil
	}
	return &inter.Header{
		ParentHash:  s.genesis.ParentHash,
		UncleHash:   types.EmptyUncleHash,
		Coinbase:    s.genesis.Author,
		Root:        s.StateRoot(),
		TxHash:      s.genesis.TxRoot,
		ReceiptHash: s.genesis.ReceiptsRoot,
		Difficulty:  s.genesis.Difficulty,
		Number:      common.Big0,
		GasLimit:    s.genesis.GasLimit,
		GasUsed:     s.genesis.GasUsed,
		Time:        s.genesis.Timestamp,
		Extra:       s.genesis.ExtraData,
		Seal:        seal,
	}
}

// GenesisBlock returns the RLP encoding of the genesis block: the header
// with empty transaction and uncle lists.
func (s *Spec) GenesisBlock() ([]byte, error) {
	return rlp.EncodeToBytes(inter.NewBlock(s.GenesisHeader()))
}

// OverwriteGenesisParams replaces the genesis header fields with the ones
// from another document's genesis section. The accounts section and the
// memoized state root are untouched.
func (s *Spec) OverwriteGenesisParams(g chainjson.Genesis) error {
	descriptor, err := genesisFromJSON(g)
	if err != nil {
		return err
	}
	s.genesis = descriptor
	return nil
}

// SetGenesisState replaces the predefined genesis accounts and recomputes
// the memoized state root, re-running the constructors over the new state.
func (s *Spec) SetGenesisState(pod genesis.PodState) error {
	s.stateRootMu.Lock()
	defer s.stateRootMu.Unlock()

	s.genesisState = pod.Copy()
	root, err := evmcore.ApplyGenesis(rawdb.NewMemoryDatabase(), s.genesisState, s.constructors, s.genesisEnv())
	if err != nil {
		return err
	}
	s.stateRoot = root
	return nil
}

// IsStateRootValid reports whether the memoized root equals the root of the
// predefined accounts alone. On chains with genesis constructors the two
// legitimately differ, since the memo covers post-constructor state.
func (s *Spec) IsStateRootValid() bool {
	root, err := evmcore.ApplyAccounts(rawdb.NewMemoryDatabase(), s.genesisState, s.genesisEnv())
	if err != nil {
		return false
	}
	return s.StateRoot() == root
}

// EnsureDBGood materializes the genesis state into db unless the memoized
// root is already present. It reports whether anything was written.
func (s *Spec) EnsureDBGood(db ethdb.Database) (bool, error) {
	want := s.StateRoot()
	if _, err := state.New(want, state.NewDatabase(db), nil); err == nil {
		return false, nil
	}
	root, err := evmcore.ApplyGenesis(db, s.genesisState, s.constructors, s.genesisEnv())
	if err != nil {
		return false, err
	}
	if root != want {
		return false, fmt.Errorf("materialized genesis root %s does not match the specification root %s", root.Hex(), want.Hex())
	}
	return true, nil
}

func (s *Spec) genesisEnv() evmcore.GenesisEnv {
	params := s.Params()
	return evmcore.GenesisEnv{
		ChainConfig: params.EvmChainConfig(),
		StartNonce:  params.AccountStartNonce,
		Author:      s.genesis.Author,
		Timestamp:   s.genesis.Timestamp,
		Difficulty:  s.genesis.Difficulty,
		GasLimit:    s.genesis.GasLimit,
	}
}
