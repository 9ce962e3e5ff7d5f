package test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-chainspec/integration"
	"github.com/rony4d/go-chainspec/inter"
	"github.com/rony4d/go-chainspec/spec"
)

// Loads the bundled constructor chain, materializes its genesis into a fresh
// database and reads the storage the constructor wrote.
func TestGenesisConstructorEndToEnd(t *testing.T) {
	s, err := integration.GetSpecByName("constructor")
	require.NoError(t, err)

	db := rawdb.NewMemoryDatabase()
	applied, err := s.EnsureDBGood(db)
	require.NoError(t, err)
	require.True(t, applied)

	statedb, err := state.New(s.StateRoot(), state.NewDatabase(db), nil)
	require.NoError(t, err)

	addr := common.HexToAddress("0x0000000000000000000000000000000000000005")
	require.Equal(t, common.BigToHash(big.NewInt(1)), statedb.GetState(addr, common.Hash{}))

	// A second pass over the same database is a no-op.
	applied, err = s.EnsureDBGood(db)
	require.NoError(t, err)
	require.False(t, applied)
}

func TestGenesisBlockRoundTrip(t *testing.T) {
	s := spec.NewTestSpec()

	enc, err := s.GenesisBlock()
	require.NoError(t, err)

	var block inter.Block
	require.NoError(t, rlp.DecodeBytes(enc, &block))
	require.Equal(t, s.GenesisHeader().Hash(), block.Header.Hash())
	require.Empty(t, block.Txs)
	require.Empty(t, block.Uncles)
}

func TestGenesisHashStableAcrossLoads(t *testing.T) {
	want := spec.NewPowTestSpec().GenesisHeader().Hash()
	for i := 0; i < 5; i++ {
		require.Equal(t, want, spec.NewPowTestSpec().GenesisHeader().Hash())
	}
}
