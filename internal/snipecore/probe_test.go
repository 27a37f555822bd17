package snipecore

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	err error
	got ethereum.CallMsg
}

func (c *fakeCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	c.got = msg
	if c.err != nil {
		return nil, c.err
	}
	return []byte{0x01}, nil
}

func TestProbeLive(t *testing.T) {
	tmpl, err := NewTemplate("0x00000000000000000000000000000000000000aa", "mint(uint256)", []string{"1"}, 0.01)
	require.NoError(t, err)
	from := common.HexToAddress("0x00000000000000000000000000000000000000bb")

	caller := &fakeCaller{}
	require.True(t, ProbeLive(context.Background(), caller, from, tmpl))
	require.Equal(t, from, caller.got.From)
	require.Equal(t, tmpl.To, *caller.got.To)
	require.Equal(t, tmpl.Data, caller.got.Data)
	require.Equal(t, 0, caller.got.Value.Cmp(tmpl.ValueWei))
}

func TestProbeNotLiveOnAnyError(t *testing.T) {
	tmpl, err := NewTemplate("0x00000000000000000000000000000000000000aa", "mint()", nil, 0)
	require.NoError(t, err)
	from := common.HexToAddress("0x00000000000000000000000000000000000000bb")

	for _, e := range []error{
		errors.New("execution reverted: sale not started"),
		errors.New("connection refused"),
		context.DeadlineExceeded,
	} {
		caller := &fakeCaller{err: e}
		require.Falsef(t, ProbeLive(context.Background(), caller, from, tmpl), "error %v", e)
	}
}
