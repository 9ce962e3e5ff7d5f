package spec

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-chainspec/chain/genesis"
	"github.com/rony4d/go-chainspec/chainjson"
)

func TestLoadRejectsEmptyDocument(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	require.Error(t, err)

	_, err = Load(strings.NewReader("{}"))
	require.Error(t, err)
}

func TestBundledSpecsLoad(t *testing.T) {
	names := BundledNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := Bundled(name)
			require.NoError(t, err)
			require.NotNil(t, s.Engine)
			require.NotEqual(t, common.Hash{}, s.StateRoot())

			block, err := s.GenesisBlock()
			require.NoError(t, err)
			require.NotEmpty(t, block)
		})
	}
}

func TestBundledEngineSelection(t *testing.T) {
	require.Equal(t, "NullEngine", NewNullSpec().Engine.Name())
	require.Equal(t, "InstantSeal", NewInstantSpec().Engine.Name())
	require.Equal(t, "AuthorityRound", NewRoundSpec().Engine.Name())
	require.Equal(t, "Tendermint", NewTendermintSpec().Engine.Name())
	require.Equal(t, "Ethash", NewPowTestSpec().Engine.Name())
}

func TestTestSpecParams(t *testing.T) {
	s := NewTestSpec()
	params := s.Params()

	require.EqualValues(t, 2, s.NetworkID())
	require.EqualValues(t, 2, s.ChainID())
	require.Equal(t, "eth", s.SubprotocolName())
	require.EqualValues(t, 0x0100000, params.AccountStartNonce)
	require.True(t, params.ContainsBugfixHardFork())
	require.True(t, s.Engine.IsBuiltin(common.BytesToAddress([]byte{1})))
}

// The morden chain's materialized root is a known reference value shared
// with other client implementations; it must never drift.
func TestTestSpecStateRoot(t *testing.T) {
	require.Equal(t,
		common.HexToHash("0xf3f4696bbf3b3b07775128eb7a3763279a394e382130f27c21e70233e04946a9"),
		NewTestSpec().StateRoot())
}

func TestGenesisHeaderDeterministic(t *testing.T) {
	want := NewTestSpec().GenesisHeader().Hash()
	for i := 0; i < 10; i++ {
		require.Equal(t, want, NewTestSpec().GenesisHeader().Hash())
	}
}

func TestGenesisBlockDeterministic(t *testing.T) {
	s := NewTestSpec()
	first, err := s.GenesisBlock()
	require.NoError(t, err)
	second, err := NewTestSpec().GenesisBlock()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestStateRootValidity(t *testing.T) {
	// Without constructors the memoized root is exactly the accounts root.
	require.True(t, NewNullSpec().IsStateRootValid())

	// A constructor moves the memoized root past the accounts-only root.
	require.False(t, NewConstructorSpec().IsStateRootValid())
}

func TestConstructorChangesStateRoot(t *testing.T) {
	require.NotEqual(t, NewNullSpec().StateRoot(), NewConstructorSpec().StateRoot())
}

func TestSetGenesisState(t *testing.T) {
	s := NewNullSpec()
	before := s.StateRoot()

	pod := genesis.PodState{
		common.HexToAddress("0x1000000000000000000000000000000000000001"): {
			Balance: common.Big1,
		},
	}
	require.NoError(t, s.SetGenesisState(pod))
	require.NotEqual(t, before, s.StateRoot())

	// Setting the same state again is stable.
	changed := s.StateRoot()
	require.NoError(t, s.SetGenesisState(pod))
	require.Equal(t, changed, s.StateRoot())
}

func TestSetGenesisStateRerunsConstructors(t *testing.T) {
	s := NewConstructorSpec()
	want := s.StateRoot()

	// Re-running the materialization over the same ledger reproduces the
	// root memoized at load time.
	require.NoError(t, s.SetGenesisState(s.GenesisState()))
	require.Equal(t, want, s.StateRoot())
}

func TestOverwriteGenesisParams(t *testing.T) {
	s := NewNullSpec()
	root := s.StateRoot()
	author := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	err := s.OverwriteGenesisParams(chainjson.Genesis{
		Seal:       chainjson.Seal{Generic: []byte{}},
		GasLimit:   gethmath.HexOrDecimal64(123456),
		Author:     &author,
		Difficulty: nil,
	})
	require.NoError(t, err)

	header := s.GenesisHeader()
	require.EqualValues(t, 123456, header.GasLimit)
	require.Equal(t, author, header.Coinbase)
	require.Equal(t, root, s.StateRoot())
}

func TestEnsureDBGood(t *testing.T) {
	s := NewConstructorSpec()
	db := rawdb.NewMemoryDatabase()

	applied, err := s.EnsureDBGood(db)
	require.NoError(t, err)
	require.True(t, applied)

	applied, err = s.EnsureDBGood(db)
	require.NoError(t, err)
	require.False(t, applied)
}

func TestAdoptedStateRoot(t *testing.T) {
	doc := `{
		"name": "Adopted",
		"engine": { "null": null },
		"params": {
			"minGasLimit": "0x1388",
			"gasLimitBoundDivisor": "0x0400",
			"networkID": "0x2"
		},
		"genesis": {
			"seal": { "generic": "0x" },
			"difficulty": "0x20000",
			"gasLimit": "0x2fefd8",
			"stateRoot": "0x1111111111111111111111111111111111111111111111111111111111111111"
		},
		"accounts": {}
	}`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111"), s.StateRoot())
}

func TestLoadRejectsBrokenEngine(t *testing.T) {
	doc := `{
		"name": "Broken",
		"engine": { "authorityRound": { "params": { "stepDuration": 0, "validators": [] } } },
		"params": { "minGasLimit": "0x1388", "gasLimitBoundDivisor": "0x0400", "networkID": "0x2" },
		"genesis": { "seal": { "generic": "0x" }, "difficulty": "0x20000", "gasLimit": "0x2fefd8" },
		"accounts": {}
	}`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
}

func TestConstructorsInDeclarationOrder(t *testing.T) {
	doc := `{
		"name": "Ordered",
		"engine": { "null": null },
		"params": { "minGasLimit": "0x1388", "gasLimitBoundDivisor": "0x0400", "networkID": "0x2" },
		"genesis": { "seal": { "generic": "0x" }, "difficulty": "0x20000", "gasLimit": "0x2fefd8" },
		"accounts": {
			"00000000000000000000000000000000000000ff": { "constructor": "0x600160005560006000f3" },
			"0000000000000000000000000000000000000005": { "constructor": "0x600160005560006000f3" }
		}
	}`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	constructors := s.Constructors()
	require.Len(t, constructors, 2)
	require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000ff"), constructors[0].Address)
	require.Equal(t, common.HexToAddress("0x0000000000000000000000000000000000000005"), constructors[1].Address)
}
