package bits_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitskit/bits"
)

func TestOpKindString(t *testing.T) {
	want := map[bits.OpKind]string{
		bits.OpSum:         "sum",
		bits.OpProduct:     "product",
		bits.OpMin:         "min",
		bits.OpMax:         "max",
		bits.OpGreaterThan: "greater-than",
		bits.OpLessThan:    "less-than",
		bits.OpEqual:       "equal",
	}
	for k, s := range want {
		require.Equal(t, s, k.String())
	}
	require.Equal(t, "OpKind(42)", bits.OpKind(42).String())
}

func TestOpKindBinary(t *testing.T) {
	binary := map[bits.OpKind]bool{
		bits.OpSum:         false,
		bits.OpProduct:     false,
		bits.OpMin:         false,
		bits.OpMax:         false,
		bits.OpGreaterThan: true,
		bits.OpLessThan:    true,
		bits.OpEqual:       true,
	}
	for k, want := range binary {
		require.Equal(t, want, k.Binary(), k.String())
	}
}
