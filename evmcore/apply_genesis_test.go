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

package evmcore

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	ethparams "github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-chainspec/chain/genesis"
)

// storeOneCode stores 1 at slot 0 and returns empty runtime code.
var storeOneCode = hexutil.MustDecode("0x600160005560006000f3")

func testEnv() GenesisEnv {
	return GenesisEnv{
		ChainConfig: ethparams.AllEthashProtocolChanges,
		Difficulty:  big.NewInt(131072),
		GasLimit:    5000,
	}
}

func testPod() genesis.PodState {
	return genesis.PodState{
		common.HexToAddress("0x1000000000000000000000000000000000000001"): {
			Balance: big.NewInt(1000000),
		},
		common.HexToAddress("0x1000000000000000000000000000000000000002"): {
			Balance: big.NewInt(1),
			Storage: map[common.Hash]common.Hash{
				common.BigToHash(big.NewInt(7)): common.BigToHash(big.NewInt(42)),
			},
		},
	}
}

func TestApplyAccountsDeterministic(t *testing.T) {
	first, err := ApplyAccounts(rawdb.NewMemoryDatabase(), testPod(), testEnv())
	require.NoError(t, err)
	second, err := ApplyAccounts(rawdb.NewMemoryDatabase(), testPod(), testEnv())
	require.NoError(t, err)

	require.NotEqual(t, common.Hash{}, first)
	require.Equal(t, first, second)
}

func TestApplyGenesisWithoutConstructors(t *testing.T) {
	db := rawdb.NewMemoryDatabase()
	root, err := ApplyGenesis(db, testPod(), nil, testEnv())
	require.NoError(t, err)

	accountsRoot, err := ApplyAccounts(rawdb.NewMemoryDatabase(), testPod(), testEnv())
	require.NoError(t, err)
	require.Equal(t, accountsRoot, root)

	statedb, err := state.New(root, state.NewDatabase(db), nil)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000000), statedb.GetBalance(common.HexToAddress("0x1000000000000000000000000000000000000001")))
	require.Equal(t,
		common.BigToHash(big.NewInt(42)),
		statedb.GetState(common.HexToAddress("0x1000000000000000000000000000000000000002"), common.BigToHash(big.NewInt(7))))
}

func TestApplyGenesisRunsConstructor(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000005")
	constructors := []genesis.Constructor{{Address: addr, Code: storeOneCode}}

	env := testEnv()
	env.StartNonce = 5

	db := rawdb.NewMemoryDatabase()
	root, err := ApplyGenesis(db, nil, constructors, env)
	require.NoError(t, err)

	statedb, err := state.New(root, state.NewDatabase(db), nil)
	require.NoError(t, err)
	require.Equal(t, common.BigToHash(big.NewInt(1)), statedb.GetState(addr, common.Hash{}))
	require.Empty(t, statedb.GetCode(addr))
	// Constructor targets are fresh accounts and start at the engine nonce.
	require.EqualValues(t, 5, statedb.GetNonce(addr))
}

func TestApplyAccountsKeepsDeclaredNonces(t *testing.T) {
	omitted := common.HexToAddress("0x1000000000000000000000000000000000000001")
	declared := common.HexToAddress("0x1000000000000000000000000000000000000002")
	pod := genesis.PodState{
		omitted:  {Balance: big.NewInt(5)},
		declared: {Balance: big.NewInt(5), Nonce: 7},
	}

	env := testEnv()
	env.StartNonce = 0x100000

	db := rawdb.NewMemoryDatabase()
	root, err := ApplyAccounts(db, pod, env)
	require.NoError(t, err)

	statedb, err := state.New(root, state.NewDatabase(db), nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, statedb.GetNonce(omitted))
	require.EqualValues(t, 7, statedb.GetNonce(declared))
}

func TestApplyGenesisConstructorOverridesAccount(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000005")
	pod := genesis.PodState{
		addr: {
			Balance: big.NewInt(99),
			Storage: map[common.Hash]common.Hash{
				common.BigToHash(big.NewInt(9)): common.BigToHash(big.NewInt(9)),
			},
		},
	}
	constructors := []genesis.Constructor{{Address: addr, Code: storeOneCode}}

	db := rawdb.NewMemoryDatabase()
	root, err := ApplyGenesis(db, pod, constructors, testEnv())
	require.NoError(t, err)

	statedb, err := state.New(root, state.NewDatabase(db), nil)
	require.NoError(t, err)
	require.Equal(t, common.BigToHash(big.NewInt(1)), statedb.GetState(addr, common.Hash{}))
	require.Equal(t, common.Hash{}, statedb.GetState(addr, common.BigToHash(big.NewInt(9))))
	require.Zero(t, statedb.GetBalance(addr).Sign())
}

func TestApplyGenesisSurvivesFailingConstructor(t *testing.T) {
	good := common.HexToAddress("0x0000000000000000000000000000000000000005")
	bad := common.HexToAddress("0x0000000000000000000000000000000000000006")
	constructors := []genesis.Constructor{
		{Address: bad, Code: []byte{0xfe}}, // INVALID opcode
		{Address: good, Code: storeOneCode},
	}

	db := rawdb.NewMemoryDatabase()
	root, err := ApplyGenesis(db, testPod(), constructors, testEnv())
	require.NoError(t, err)

	statedb, err := state.New(root, state.NewDatabase(db), nil)
	require.NoError(t, err)
	require.Equal(t, common.BigToHash(big.NewInt(1)), statedb.GetState(good, common.Hash{}))
}
