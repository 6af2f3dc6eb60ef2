package model

import "github.com/go-gl/mathgl/mgl32"

// cubeCorners are the eight corners of a unit cube centered on the origin with their
// texture coordinates. U runs 0..3 around the sides so a strip texture wraps the cube.
var cubeCorners = [8]struct {
	pos mgl32.Vec3
	uv  [2]float32
}{
	{mgl32.Vec3{0.5, 0.5, 0.5}, [2]float32{1, 1}},
	{mgl32.Vec3{0.5, -0.5, 0.5}, [2]float32{1, 0}},
	{mgl32.Vec3{-0.5, -0.5, 0.5}, [2]float32{0, 0}},
	{mgl32.Vec3{-0.5, 0.5, 0.5}, [2]float32{0, 1}},
	{mgl32.Vec3{0.5, 0.5, -0.5}, [2]float32{2, 1}},
	{mgl32.Vec3{0.5, -0.5, -0.5}, [2]float32{2, 0}},
	{mgl32.Vec3{-0.5, -0.5, -0.5}, [2]float32{3, 0}},
	{mgl32.Vec3{-0.5, 0.5, -0.5}, [2]float32{3, 1}},
}

// cubeIndices is the triangle list over cubeCorners (front, right, back, left, top, bottom).
var cubeIndices = []uint32{
	0, 3, 1, 3, 2, 1,
	0, 1, 5, 5, 4, 0,
	4, 5, 6, 6, 7, 4,
	7, 6, 2, 2, 3, 7,
	4, 7, 3, 3, 0, 4,
	2, 6, 5, 5, 1, 2,
}

// CubeVertices returns the eight shared corner vertices of a unit cube.
// Normals point outward along the corner diagonal.
//
// Returns:
//   - []GPUVertex: the cube vertices
func CubeVertices() []GPUVertex {
	vertices := make([]GPUVertex, len(cubeCorners))
	for i, c := range cubeCorners {
		vertices[i] = GPUVertex{
			Position: [3]float32(c.pos),
			Normal:   [3]float32(c.pos.Normalize()),
			TexCoord: c.uv,
		}
	}
	return vertices
}

// CubeIndices returns a copy of the cube's triangle list.
func CubeIndices() []uint32 {
	return append([]uint32(nil), cubeIndices...)
}

// NewCube builds a unit cube Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - Model: the cube
//   - error: never non-nil for the built-in geometry, kept for symmetry with NewModel
func NewCube(name string) (Model, error) {
	return NewModel(
		WithName(name),
		WithVertices(CubeVertices()),
		WithIndices(cubeIndices),
	)
}
