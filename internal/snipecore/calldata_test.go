package snipecore

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	require.Equal(t, common.FromHex("0xa9059cbb"), Selector("transfer(address,uint256)"))
	require.Equal(t, common.FromHex("0x1249c58b"), Selector("mint()"))
}

func TestParseSig(t *testing.T) {
	types, err := parseSig("mint()")
	require.NoError(t, err)
	require.Empty(t, types)

	types, err = parseSig("mint(uint256, address)")
	require.NoError(t, err)
	require.Equal(t, []string{"uint256", "address"}, types)

	for _, bad := range []string{"", "mint", "(uint256)", "mint(uint256"} {
		_, err := parseSig(bad)
		require.Errorf(t, err, "signature %q", bad)
	}
}

func TestBuildCalldataUint(t *testing.T) {
	data, err := BuildCalldata("mint(uint256)", []string{"5"})
	require.NoError(t, err)
	require.Len(t, data, 36)
	require.Equal(t, Selector("mint(uint256)"), data[:4])
	require.Equal(t, common.LeftPadBytes([]byte{5}, 32), data[4:])
}

func TestBuildCalldataHexUint(t *testing.T) {
	data, err := BuildCalldata("mint(uint8)", []string{"0xff"})
	require.NoError(t, err)
	require.Equal(t, common.LeftPadBytes([]byte{0xff}, 32), data[4:])
}

func TestBuildCalldataAddress(t *testing.T) {
	addr := "0xDAFEA492D9c6733ae3d56b7Ed1ADB60692c98Bc5"
	data, err := BuildCalldata("setMinter(address)", []string{addr})
	require.NoError(t, err)
	require.Equal(t, common.LeftPadBytes(common.HexToAddress(addr).Bytes(), 32), data[4:])
}

func TestBuildCalldataBool(t *testing.T) {
	data, err := BuildCalldata("toggle(bool)", []string{"true"})
	require.NoError(t, err)
	require.Equal(t, common.LeftPadBytes([]byte{1}, 32), data[4:])

	data, err = BuildCalldata("toggle(bool)", []string{"0"})
	require.NoError(t, err)
	require.Equal(t, make([]byte, 32), data[4:])
}

func TestBuildCalldataErrors(t *testing.T) {
	cases := []struct {
		name string
		sig  string
		args []string
	}{
		{"arg count mismatch", "mint(uint256)", nil},
		{"bad address", "setMinter(address)", []string{"nope"}},
		{"dynamic type", "setName(string)", []string{"x"}},
		{"negative uint", "mint(uint256)", []string{"-1"}},
		{"garbage uint", "mint(uint256)", []string{"12z"}},
		{"bad bool", "toggle(bool)", []string{"maybe"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := BuildCalldata(c.sig, c.args)
			require.Error(t, err)
		})
	}
}

func TestNewTemplate(t *testing.T) {
	tmpl, err := NewTemplate("0x00000000000000000000000000000000000000aa", "mint(uint256)", []string{"2"}, 0.05)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000aa"), tmpl.To)
	require.Len(t, tmpl.Data, 36)
	require.Equal(t, big.NewInt(50_000_000_000_000_000), tmpl.ValueWei)

	_, err = NewTemplate("not-an-address", "mint()", nil, 0)
	require.Error(t, err)

	_, err = NewTemplate("0x00000000000000000000000000000000000000aa", "mint()", nil, -1)
	require.Error(t, err)
}

func TestEtherToWei(t *testing.T) {
	require.Equal(t, int64(0), EtherToWei(0).Int64())
	require.Equal(t, "1000000000000000000", EtherToWei(1).String())
}

func TestTemplateValueNeverNil(t *testing.T) {
	var tmpl Template
	require.NotNil(t, tmpl.Value())
	require.Equal(t, int64(0), tmpl.Value().Int64())
}
