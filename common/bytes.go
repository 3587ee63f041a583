package common

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Provides general helper functions for conversions into the raw byte form the rendering backend consumes.

// RawBytes writes a given fixed size value (or slice of them) as its little endian byte representation,
// voiding all type information in the process. Mainly used to hand vertex and index data to the backend.
func RawBytes(p any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, p); err != nil {
		return nil, fmt.Errorf("binary.Write failed: %w", err)
	}
	return buf.Bytes(), nil
}

// ToByteArr drops type reference from float array so it can be passed on as a plain byte buffer.
// The returned slice shares memory with in.
func ToByteArr(in []float32) []byte {
	if len(in) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&in[0])), len(in)*4)
}
