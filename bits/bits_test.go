package bits_test

import (
	"testing"

	"github.com/masterkusok/desmatrix/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSetBitInverted(t *testing.T) {
	data := make([]byte, 1)

	require.NoError(t, bits.SetBit(data, 0, bits.Inverted, 1))
	got, err := bits.GetBit(data, 0, bits.Inverted)
	require.NoError(t, err)
	assert.Equal(t, byte(1), got)

	got, err = bits.GetBit(data, 7, bits.Inverted)
	require.NoError(t, err)
	assert.Equal(t, byte(0), got)

	require.NoError(t, bits.SetBit(data, 7, bits.Inverted, 1))
	assert.Equal(t, byte(0b10000001), data[0])
}

func TestGetSetBitInvalidMode(t *testing.T) {
	data := make([]byte, 1)

	_, err := bits.GetBit(data, 0, bits.BitIndexMode(99))
	require.Error(t, err)

	err = bits.SetBit(data, 0, bits.BitIndexMode(99), 1)
	require.Error(t, err)
}
