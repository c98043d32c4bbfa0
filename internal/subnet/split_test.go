package subnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitQuarters(t *testing.T) {
	children, err := Split("192.168.0.0", 24, 26)
	require.NoError(t, err)
	require.Len(t, children, 4)

	wantNetworks := []string{"192.168.0.0", "192.168.0.64", "192.168.0.128", "192.168.0.192"}
	wantBroadcasts := []string{"192.168.0.63", "192.168.0.127", "192.168.0.191", "192.168.0.255"}

	for i, child := range children {
		assert.Equal(t, wantNetworks[i], child.Network)
		assert.Equal(t, wantBroadcasts[i], child.Broadcast)
		assert.Equal(t, 26, child.Prefix)
		assert.Equal(t, uint64(64), child.TotalHosts)
		assert.Equal(t, uint64(62), child.UsableHosts)
	}
}

// Children must tile the parent exactly: strictly increasing networks,
// each broadcast one less than the next network, and the last broadcast
// equal to the parent's.
func TestSplitTilesParent(t *testing.T) {
	tests := []struct {
		network    string
		fromPrefix int
		toPrefix   int
	}{
		{"10.0.0.0", 8, 11},
		{"172.16.0.0", 16, 20},
		{"192.168.1.0", 24, 28},
		{"203.0.113.0", 24, 25},
	}

	for _, tt := range tests {
		children, err := Split(tt.network, tt.fromPrefix, tt.toPrefix)
		require.NoError(t, err)
		require.Len(t, children, 1<<(tt.toPrefix-tt.fromPrefix))

		parent, err := CalculateWithPrefix(tt.network, tt.fromPrefix)
		require.NoError(t, err)

		assert.Equal(t, parent.Network, children[0].Network)
		assert.Equal(t, parent.Broadcast, children[len(children)-1].Broadcast)

		for i := 1; i < len(children); i++ {
			prevEnd, err := ParseIPv4(children[i-1].Broadcast)
			require.NoError(t, err)
			nextStart, err := ParseIPv4(children[i].Network)
			require.NoError(t, err)
			assert.Equal(t, prevEnd+1, nextStart, "gap or overlap between child %d and %d", i-1, i)
		}
	}
}

func TestSplitSingleStep(t *testing.T) {
	children, err := Split("10.0.0.0", 30, 31)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "10.0.0.0/31", children[0].CIDR)
	assert.Equal(t, "10.0.0.2/31", children[1].CIDR)
}

func TestSplitErrors(t *testing.T) {
	// New prefix smaller than original.
	_, err := Split("192.168.0.0", 24, 20)
	assert.ErrorIs(t, err, ErrInvalidSplit)

	// Equal prefixes are not a split.
	_, err = Split("192.168.0.0", 24, 24)
	assert.ErrorIs(t, err, ErrInvalidSplit)

	_, err = Split("192.168.0.0", -1, 24)
	assert.ErrorIs(t, err, ErrInvalidSplit)

	_, err = Split("192.168.0.0", 24, 33)
	assert.ErrorIs(t, err, ErrInvalidSplit)

	_, err = Split("not-an-ip", 24, 26)
	assert.ErrorIs(t, err, ErrMalformedAddress)
}

func TestSplitTooLarge(t *testing.T) {
	// 2^17 children exceeds the allocation guard.
	_, err := Split("10.0.0.0", 8, 25)
	assert.ErrorIs(t, err, ErrSplitTooLarge)

	// 2^16 is exactly at the limit.
	children, err := Split("10.0.0.0", 8, 24)
	require.NoError(t, err)
	assert.Len(t, children, 65536)
}
