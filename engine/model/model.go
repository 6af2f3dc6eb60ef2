package model

import (
	"errors"
	"fmt"
)

// ErrEmptyMesh is returned by NewModel when no vertices or indices were supplied.
var ErrEmptyMesh = errors.New("model has no geometry")

// model is the implementation of the Model interface.
type model struct {
	name                  string
	vertices              []GPUVertex
	indices               []uint32
	vertexData, indexData []byte
}

// Model is an indexed triangle-list mesh ready for upload.
// The byte buffers are packed once at construction and never change.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the CPU-side vertices.
	Vertices() []GPUVertex

	// Indices returns the triangle list indices.
	Indices() []uint32

	// VertexData returns the packed vertex buffer.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the packed 32-bit index buffer.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int
}

var _ Model = &model{}

// NewModel creates a Model from the given options and packs its GPU buffers.
//
// Parameters:
//   - options: functional options providing the name and geometry
//
// Returns:
//   - Model: the new model
//   - error: ErrEmptyMesh, or an error naming the first out-of-range or incomplete index
func NewModel(options ...ModelBuilderOption) (Model, error) {
	m := &model{}
	for _, option := range options {
		option(m)
	}

	if len(m.vertices) == 0 || len(m.indices) == 0 {
		return nil, fmt.Errorf("%q: %w", m.name, ErrEmptyMesh)
	}
	if len(m.indices)%3 != 0 {
		return nil, fmt.Errorf("%q: index count %d is not a multiple of 3", m.name, len(m.indices))
	}
	for i, idx := range m.indices {
		if int(idx) >= len(m.vertices) {
			return nil, fmt.Errorf("%q: index %d at position %d out of range (%d vertices)", m.name, idx, i, len(m.vertices))
		}
	}

	m.vertexData = MarshalVertices(m.vertices)
	m.indexData = MarshalIndices(m.indices)
	return m, nil
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) IndexCount() int {
	return len(m.indices)
}
