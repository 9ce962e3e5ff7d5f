package consensus

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestValidatorSetOrderAndIDs(t *testing.T) {
	a := common.HexToAddress("0x1000000000000000000000000000000000000001")
	b := common.HexToAddress("0x1000000000000000000000000000000000000002")
	c := common.HexToAddress("0x1000000000000000000000000000000000000003")

	vs := NewValidatorSet([]common.Address{b, a, c, a})

	require.Equal(t, 3, vs.Len())
	require.Equal(t, []common.Address{b, a, c}, vs.List())

	id, ok := vs.ID(b)
	require.True(t, ok)
	require.EqualValues(t, 1, id)
	id, ok = vs.ID(a)
	require.True(t, ok)
	require.EqualValues(t, 2, id)

	require.True(t, vs.Contains(c))
	require.False(t, vs.Contains(common.Address{}))
}

func TestValidatorSetRotation(t *testing.T) {
	a := common.HexToAddress("0x1000000000000000000000000000000000000001")
	b := common.HexToAddress("0x1000000000000000000000000000000000000002")

	vs := NewValidatorSet([]common.Address{a, b})

	require.Equal(t, a, vs.AuthorityFor(0))
	require.Equal(t, b, vs.AuthorityFor(1))
	require.Equal(t, a, vs.AuthorityFor(2))
	require.Equal(t, b, vs.AuthorityFor(101))
}

func TestValidatorSetEmptyHasNoAuthority(t *testing.T) {
	vs := NewValidatorSet(nil)
	require.Equal(t, common.Address{}, vs.AuthorityFor(0))
	require.Equal(t, common.Address{}, vs.AuthorityFor(42))
}
