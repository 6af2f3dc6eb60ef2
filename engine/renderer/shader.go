package renderer

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
)

const (
	// VertexEntryPoint is the vertex stage entry point every drawable shader must define.
	VertexEntryPoint = "vs_main"

	// FragmentEntryPoint is the fragment stage entry point every drawable shader must define.
	FragmentEntryPoint = "fs_main"
)

const frameBindings = `@group(0) @binding(0) var<uniform> camera: CameraUniform;
@group(0) @binding(1) var<uniform> light: Light;
@group(0) @binding(2) var<uniform> model: mat4x4<f32>;
`

// ComposeShader prepends the shared struct definitions and the group 0 bindings to a drawable's
// shader body. The body can use VertexInput, camera, light and model directly.
//
// Parameters:
//   - body: the drawable's WGSL, defining VertexEntryPoint and FragmentEntryPoint
//
// Returns:
//   - string: the complete WGSL module
func ComposeShader(body string) string {
	var sb strings.Builder
	for _, part := range []string{
		camera.GPUCameraUniformSource,
		light.GPULightSource,
		model.GPUVertexSource,
		frameBindings,
	} {
		sb.WriteString(strings.TrimSpace(part))
		sb.WriteString("\n\n")
	}
	sb.WriteString(body)
	return sb.String()
}
