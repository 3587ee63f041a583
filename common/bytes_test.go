package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawBytes(t *testing.T) {
	type pair struct {
		A float32
		B uint32
	}
	b, err := RawBytes([]pair{{A: 1.5, B: 7}})
	require.NoError(t, err)
	require.Len(t, b, 8)
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(b[:4])))
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(b[4:]))

	_, err = RawBytes(map[string]int{})
	assert.Error(t, err)
}

func TestToByteArr(t *testing.T) {
	in := []float32{1, -2}
	b := ToByteArr(in)
	require.Len(t, b, 8)
	assert.Equal(t, float32(-2), math.Float32frombits(binary.LittleEndian.Uint32(b[4:])))
	assert.Nil(t, ToByteArr(nil))
}
