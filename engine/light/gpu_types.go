package light

import (
	_ "embed"
	"encoding/binary"
	"math"
)

// GPULightSource is the canonical WGSL definition of the Light struct.
// Matches GPULight layout exactly (32 bytes).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULightSize is the byte size of a marshaled GPULight.
const GPULightSize = 32

// GPULight is the GPU-aligned representation of a point light.
// Matches the WGSL Light struct layout exactly (see GPULightSource).
type GPULight struct {
	Position  [3]float32 // offset  0: world-space position
	Intensity float32    // offset 12: scalar multiplier
	Color     [3]float32 // offset 16: RGB color, padded to 32 bytes
}

// NewGPULight snapshots a Light for upload.
//
// Parameters:
//   - l: the light to snapshot
//
// Returns:
//   - GPULight: the packed light
func NewGPULight(l Light) GPULight {
	return GPULight{
		Position:  [3]float32(l.Position()),
		Intensity: l.Intensity(),
		Color:     [3]float32(l.Color()),
	}
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, GPULightSize)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(g.Intensity))
	return buf
}
