package camera

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUCameraUniformSource is the WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (80 bytes).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniformSize is the byte size of a marshaled GPUCameraUniform.
const GPUCameraUniformSize = 80

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset  0: combined view-projection matrix (mat4x4<f32>)
	CameraPosition [3]float32  // offset 64: world-space camera position (vec3<f32>), padded to 80 bytes
}

// NewGPUCameraUniform packs a view-projection matrix and eye position for upload.
//
// Parameters:
//   - viewProj: the matrix the vertex shader multiplies world positions by
//   - eye: world-space camera position for view-dependent shading
//
// Returns:
//   - GPUCameraUniform: the packed uniform
func NewGPUCameraUniform(viewProj mgl32.Mat4, eye mgl32.Vec3) GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj:       [16]float32(viewProj),
		CameraPosition: [3]float32(eye),
	}
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, GPUCameraUniformSize)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	return buf
}
