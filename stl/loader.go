package stl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"toy_renderbase/model"

	"golang.org/x/image/math/f32"
	vm "local/vector_math"
)

const (
	headerSize   = 80
	preambleSize = headerSize + 4
	// normal, three corners and a 2 byte attribute count
	triangleStride = 50
)

var ErrTruncated = errors.New("stl data is truncated")

// ReadFile loads a binary stl file into a mesh with one vertex per triangle corner.
func ReadFile(path string) (*model.Mesh, error) {
	log.Printf("Reading stl file %s", path)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stl file '%s': %w", path, err)
	}
	mesh, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stl file '%s': %w", path, err)
	}
	log.Printf("Successfully read stl file, Header: '%s', Triangle Count: %d, Triangle memory size: %d KiB",
		b[:headerSize], len(mesh.VIndices)/3, len(b[preambleSize:])/1024)
	return mesh, nil
}

// Decode parses binary stl data. The facet normal is stored as the vertex color of every corner.
func Decode(b []byte) (*model.Mesh, error) {
	if len(b) < preambleSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(b), preambleSize)
	}
	triangleCnt := int(binary.LittleEndian.Uint32(b[headerSize:preambleSize]))
	body := b[preambleSize:]
	if len(body) < triangleCnt*triangleStride {
		return nil, fmt.Errorf("%w: %d triangles announced, %d bytes present", ErrTruncated, triangleCnt, len(body))
	}

	mb := model.NewMeshBuilder()
	for i := 0; i < triangleCnt; i++ {
		t := body[i*triangleStride:]
		normal := toVec3(t[:12])
		i0 := mb.AddVert(model.Vertex{Pos: toVec3(t[12:24]), Color: normal})
		i1 := mb.AddVert(model.Vertex{Pos: toVec3(t[24:36]), Color: normal})
		i2 := mb.AddVert(model.Vertex{Pos: toVec3(t[36:48]), Color: normal})
		mb.AddTri(i0, i1, i2)
	}
	return mb.Build(), nil
}

func toVec3(bytes []byte) vm.Vec3 {
	var v f32.Vec3
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return vm.Vec3FromF32(v)
}
