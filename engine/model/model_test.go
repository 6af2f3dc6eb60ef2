package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVertex_Marshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.25, 0.75},
	}
	buf := v.Marshal()
	require.Len(t, buf, GPUVertexSize)

	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(3), f(8))
	assert.Equal(t, float32(1), f(16))
	assert.Equal(t, float32(0.25), f(24))
	assert.Equal(t, float32(0.75), f(28))
	assert.Contains(t, GPUVertexSource, "@location(2) tex_coord")
}

func TestNewCube(t *testing.T) {
	cube, err := NewCube("cube")
	require.NoError(t, err)

	assert.Equal(t, "cube", cube.Name())
	assert.Len(t, cube.Vertices(), 8)
	assert.Equal(t, 36, cube.IndexCount())
	assert.Len(t, cube.VertexData(), 8*GPUVertexSize)
	assert.Len(t, cube.IndexData(), 36*4)
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(cube.IndexData()[4:]))

	for _, v := range cube.Vertices() {
		for _, p := range v.Position {
			assert.InDelta(t, 0.5, math.Abs(float64(p)), 1e-6)
		}
	}
}

func TestNewCube_EveryFaceCovered(t *testing.T) {
	// each of the twelve triangles lies on exactly one face plane
	faces := map[[2]int]int{}
	verts := CubeVertices()
	idx := CubeIndices()
	for tri := 0; tri < len(idx); tri += 3 {
		for axis := range 3 {
			a := verts[idx[tri]].Position[axis]
			if a == verts[idx[tri+1]].Position[axis] && a == verts[idx[tri+2]].Position[axis] {
				sign := 1
				if a < 0 {
					sign = -1
				}
				faces[[2]int{axis, sign}]++
			}
		}
	}
	assert.Len(t, faces, 6)
	for face, n := range faces {
		assert.Equal(t, 2, n, "face %v", face)
	}
}

func TestNewModel_Validation(t *testing.T) {
	_, err := NewModel(WithName("empty"))
	assert.ErrorIs(t, err, ErrEmptyMesh)

	verts := CubeVertices()
	_, err = NewModel(WithVertices(verts), WithIndices([]uint32{0, 1}))
	assert.ErrorContains(t, err, "multiple of 3")

	_, err = NewModel(WithVertices(verts), WithIndices([]uint32{0, 1, 8}))
	assert.ErrorContains(t, err, "out of range")
}

func TestNewModel_CopiesInput(t *testing.T) {
	verts := CubeVertices()
	idx := CubeIndices()
	m, err := NewModel(WithVertices(verts), WithIndices(idx))
	require.NoError(t, err)

	idx[0] = 7
	verts[0].Position[0] = 42
	assert.Equal(t, uint32(0), m.Indices()[0])
	assert.Equal(t, float32(0.5), m.Vertices()[0].Position[0])
}
