package stl

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vm "local/vector_math"
)

func encode(triangles [][4]vm.Vec3) []byte {
	b := make([]byte, preambleSize, preambleSize+len(triangles)*triangleStride)
	copy(b, "test solid")
	binary.LittleEndian.PutUint32(b[headerSize:], uint32(len(triangles)))
	for _, t := range triangles {
		for _, v := range t {
			for _, f := range []float32{v.X, v.Y, v.Z} {
				b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
			}
		}
		b = append(b, 0, 0)
	}
	return b
}

var twoTriangles = [][4]vm.Vec3{
	{{Z: 1}, {}, {X: 1}, {Y: 1}},
	{{Z: -1}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
}

func TestDecode(t *testing.T) {
	mesh, err := Decode(encode(twoTriangles))
	require.NoError(t, err)
	require.Len(t, mesh.Vertices, 6)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, mesh.VIndices)

	assert.Equal(t, vm.Vec3{X: 1}, mesh.Vertices[1].Pos)
	assert.Equal(t, vm.Vec3{X: 1, Y: 1}, mesh.Vertices[4].Pos)
	for i, v := range mesh.Vertices {
		assert.Equal(t, twoTriangles[i/3][0], v.Color, "vertex %d", i)
	}
}

func TestDecodeEmpty(t *testing.T) {
	mesh, err := Decode(encode(nil))
	require.NoError(t, err)
	assert.Empty(t, mesh.Vertices)
	assert.Empty(t, mesh.VIndices)
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(make([]byte, 10))
	assert.ErrorIs(t, err, ErrTruncated)

	b := encode(twoTriangles)
	_, err = Decode(b[:len(b)-1])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.stl")
	require.NoError(t, os.WriteFile(path, encode(twoTriangles), 0o644))

	mesh, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, mesh.VIndices, 6)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.stl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
