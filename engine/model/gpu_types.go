package model

import (
	_ "embed"
	"encoding/binary"
	"math"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct.
// Matches GPUVertex layout exactly (32 bytes).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertexSize is the stride of one marshaled GPUVertex.
const GPUVertexSize = 32

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: texture coordinate (8 bytes)
}

// MarshalTo writes the vertex into buf, which must hold at least GPUVertexSize bytes.
//
// Parameters:
//   - buf: destination slice
func (g *GPUVertex) MarshalTo(buf []byte) {
	_ = buf[GPUVertexSize-1]
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
	binary.LittleEndian.PutUint32(buf[24:], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.TexCoord[1]))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexSize)
	g.MarshalTo(buf)
	return buf
}

// MarshalVertices packs a vertex slice into one contiguous vertex buffer.
//
// Parameters:
//   - vertices: the vertices to pack
//
// Returns:
//   - []byte: len(vertices) * GPUVertexSize bytes
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, len(vertices)*GPUVertexSize)
	for i := range vertices {
		vertices[i].MarshalTo(buf[i*GPUVertexSize:])
	}
	return buf
}

// MarshalIndices packs 32-bit indices into a little-endian index buffer.
//
// Parameters:
//   - indices: the triangle list indices
//
// Returns:
//   - []byte: len(indices) * 4 bytes
func MarshalIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
