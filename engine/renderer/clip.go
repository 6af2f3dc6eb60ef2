package renderer

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// ModelUniformSize is the byte size of the model matrix uniform.
const ModelUniformSize = 64

// ClipCorrection remaps OpenGL clip space (z in [-w, w]) to WebGPU clip space (z in [0, w]).
// mgl32.Perspective produces the former; the depth buffer expects the latter.
var ClipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// packUniforms builds the group 0 uniform contents for one draw.
// A zero Model matrix is treated as identity and a nil Light as an unlit black light.
//
// Parameters:
//   - viewProj: the camera's view-projection matrix in OpenGL clip convention
//   - aux: the per-draw auxiliary parameters
//
// Returns:
//   - uniformData: packed camera, light and model buffers
func packUniforms(viewProj mgl32.Mat4, aux AuxParams) uniformData {
	cam := camera.NewGPUCameraUniform(ClipCorrection.Mul4(viewProj), aux.CameraPosition)

	var gpuLight light.GPULight
	if aux.Light != nil {
		gpuLight = light.NewGPULight(aux.Light)
	}

	m := aux.Model
	if m == (mgl32.Mat4{}) {
		m = mgl32.Ident4()
	}
	modelBuf := make([]byte, ModelUniformSize)
	for i, v := range m {
		binary.LittleEndian.PutUint32(modelBuf[i*4:], math.Float32bits(v))
	}

	return uniformData{
		camera: cam.Marshal(),
		light:  gpuLight.Marshal(),
		model:  modelBuf,
	}
}
