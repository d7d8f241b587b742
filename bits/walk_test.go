package bits_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitskit/bits"
)

func TestWalkVisitsAll(t *testing.T) {
	p, err := bits.Decode("C200B40A82")
	require.NoError(t, err)

	var visited int
	var sum uint64
	bits.Walk(p, func(q bits.Packet) bool {
		visited++
		sum += uint64(q.Version)
		return true
	})
	require.Equal(t, 3, visited)
	require.Equal(t, p.VersionSum(), sum)
}

func TestWalkPrune(t *testing.T) {
	p, err := bits.Decode("C200B40A82")
	require.NoError(t, err)

	var visited int
	bits.Walk(p, func(bits.Packet) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited)
}
