// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package evmcore materializes genesis state: it writes the predefined
// accounts of a chain specification into a fresh state database, runs the
// declared genesis constructors through the EVM interpreter, and commits the
// result so the state root can be compared against the one the header claims.
package evmcore

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	ethparams "github.com/ethereum/go-ethereum/params"

	"github.com/rony4d/go-chainspec/chain/genesis"
)

// GenesisEnv carries the chain context genesis constructors execute under.
type GenesisEnv struct {
	// ChainConfig selects the EVM rule set; genesis runs at height 0.
	ChainConfig *ethparams.ChainConfig
	// StartNonce is the nonce a freshly created account starts with.
	StartNonce uint64
	// Author is the block author visible to COINBASE.
	Author common.Address
	// Timestamp is the genesis timestamp visible to TIMESTAMP.
	Timestamp uint64
	// Difficulty is the genesis difficulty visible to DIFFICULTY.
	Difficulty *big.Int
	// GasLimit is the genesis gas limit visible to GASLIMIT.
	GasLimit uint64
}

// ApplyGenesis writes the predefined accounts into a fresh state over db,
// runs the genesis constructors, and commits. It returns the resulting
// state root.
//
// A failing constructor is logged and skipped; the state root is computed
// from whatever the surviving constructors produced. Only database errors
// abort the materialization.
func ApplyGenesis(db ethdb.Database, pod genesis.PodState, constructors []genesis.Constructor, env GenesisEnv) (common.Hash, error) {
	statedb, err := state.New(common.Hash{}, state.NewDatabase(db), nil)
	if err != nil {
		return common.Hash{}, err
	}
	applyAccounts(statedb, pod)
	if err := runConstructors(statedb, constructors, env); err != nil {
		return common.Hash{}, err
	}
	return flush(statedb)
}

// ApplyAccounts writes only the predefined accounts into a fresh state over
// db, with no constructor execution, and returns the resulting state root.
// This is the reproducible part of genesis: the root depends on the account
// declarations alone.
func ApplyAccounts(db ethdb.Database, pod genesis.PodState, env GenesisEnv) (common.Hash, error) {
	statedb, err := state.New(common.Hash{}, state.NewDatabase(db), nil)
	if err != nil {
		return common.Hash{}, err
	}
	applyAccounts(statedb, pod)
	return flush(statedb)
}

// applyAccounts inserts the declared accounts verbatim. The engine start
// nonce is the default for accounts newly touched during constructor
// execution, not for declared ones; a document wanting it on a predefined
// account spells it out.
func applyAccounts(statedb *state.StateDB, pod genesis.PodState) {
	for addr, account := range pod {
		statedb.CreateAccount(addr)
		if account.Balance != nil {
			statedb.SetBalance(addr, account.Balance)
		}
		statedb.SetNonce(addr, account.Nonce)
		if len(account.Code) > 0 {
			statedb.SetCode(addr, account.Code)
		}
		for key, value := range account.Storage {
			statedb.SetState(addr, key, value)
		}
	}
}

// runConstructors executes each constructor's init bytecode at its target
// address in declaration order. The account is recreated empty first, so a
// constructor fully owns its slot regardless of predefined accounts at the
// same address. The code a constructor returns becomes the account's code.
func runConstructors(statedb *state.StateDB, constructors []genesis.Constructor, env GenesisEnv) error {
	if len(constructors) == 0 {
		return nil
	}
	evm := vm.NewEVM(genesisBlockContext(env), vm.TxContext{GasPrice: new(big.Int)}, statedb, env.ChainConfig, vm.Config{})

	for _, constructor := range constructors {
		addr := constructor.Address

		// Zero the balance before recreating, otherwise the old balance
		// would be carried over into the constructor's account.
		if statedb.Exist(addr) {
			statedb.SetBalance(addr, new(big.Int))
		}
		statedb.CreateAccount(addr)
		statedb.SetNonce(addr, env.StartNonce)

		code := constructor.Code
		contract := vm.NewContract(vm.AccountRef(common.Address{}), vm.AccountRef(addr), new(big.Int), math.MaxUint64)
		contract.SetCallCode(&addr, crypto.Keccak256Hash(code), code)

		ret, err := evm.Interpreter().Run(contract, nil, false)
		if err != nil {
			log.Warn("Genesis constructor execution failed", "address", addr, "err", err)
			continue
		}
		statedb.SetCode(addr, ret)

		// Commit after each constructor so a later one observes the
		// committed storage of its predecessors.
		if _, err := statedb.Commit(false); err != nil {
			log.Warn("Genesis constructor commit failed", "address", addr, "err", err)
		}
	}
	return nil
}

// genesisBlockContext is the block context constructors see: height 0 with
// the header fields of the genesis descriptor. BLOCKHASH has nothing to
// resolve at height 0 and answers with the zero hash.
func genesisBlockContext(env GenesisEnv) vm.BlockContext {
	difficulty := env.Difficulty
	if difficulty == nil {
		difficulty = new(big.Int)
	}
	gasLimit := env.GasLimit
	if gasLimit == 0 {
		gasLimit = math.MaxUint64
	}
	return vm.BlockContext{
		CanTransfer: core.CanTransfer,
		Transfer:    core.Transfer,
		GetHash:     func(uint64) common.Hash { return common.Hash{} },
		Coinbase:    env.Author,
		BlockNumber: new(big.Int),
		Time:        new(big.Int).SetUint64(env.Timestamp),
		Difficulty:  difficulty,
		GasLimit:    gasLimit,
	}
}

// flush commits the pending state changes and persists the trie nodes, so
// the root stays resolvable after the statedb is gone. Empty accounts are
// kept: emptiness rules govern transaction processing, not the declared
// initial state, and a constructor may legitimately leave behind an account
// that holds nothing but storage.
func flush(statedb *state.StateDB) (common.Hash, error) {
	root, err := statedb.Commit(false)
	if err != nil {
		return common.Hash{}, err
	}
	if err := statedb.Database().TrieDB().Commit(root, false, nil); err != nil {
		return common.Hash{}, err
	}
	return root, nil
}
