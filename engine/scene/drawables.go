package scene

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-viewer/engine/light"
	"github.com/Carmen-Shannon/oxy-viewer/engine/model"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// LightCubeScale is the uniform scale applied to the cube marking the light position.
const LightCubeScale = 0.2

//go:embed assets/light_cube.wgsl
var lightCubeShader string

//go:embed assets/hair_cube.wgsl
var hairCubeShader string

// meshDrawable is a drawable whose mesh is built off the render thread before upload.
type meshDrawable interface {
	renderer.Drawable

	// Build creates the drawable's mesh.
	Build() error

	// Transform returns the model matrix for the current frame.
	Transform(l light.Light) mgl32.Mat4
}

// LightCube is an unlit cube drawn at the light position in the light's color.
type LightCube struct {
	m model.Model
}

var _ meshDrawable = &LightCube{}

// NewLightCube creates an unbuilt light cube.
func NewLightCube() *LightCube {
	return &LightCube{}
}

func (c *LightCube) Label() string        { return "Light Cube" }
func (c *LightCube) Model() model.Model   { return c.m }
func (c *LightCube) ShaderSource() string { return lightCubeShader }

func (c *LightCube) Build() error {
	m, err := model.NewCube("light_cube")
	if err != nil {
		return err
	}
	c.m = m
	return nil
}

// Transform places the cube at the light position, scaled by LightCubeScale.
//
// Parameters:
//   - l: the scene light
//
// Returns:
//   - mgl32.Mat4: the model matrix
func (c *LightCube) Transform(l light.Light) mgl32.Mat4 {
	p := l.Position()
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(LightCubeScale, LightCubeScale, LightCubeScale))
}

// HairCube is a unit cube at the origin shaded with the Kajiya-Kay strand model.
// Strands run along the cube's local Y axis.
type HairCube struct {
	m     model.Model
	model mgl32.Mat4
}

var _ meshDrawable = &HairCube{}

// NewHairCube creates an unbuilt hair cube with the given model matrix.
//
// Parameters:
//   - transform: the cube's placement in world space
//
// Returns:
//   - *HairCube: the new hair cube
func NewHairCube(transform mgl32.Mat4) *HairCube {
	return &HairCube{model: transform}
}

func (c *HairCube) Label() string                      { return "Hair Cube" }
func (c *HairCube) Model() model.Model                 { return c.m }
func (c *HairCube) ShaderSource() string               { return hairCubeShader }
func (c *HairCube) Transform(_ light.Light) mgl32.Mat4 { return c.model }

func (c *HairCube) Build() error {
	m, err := model.NewCube("hair_cube")
	if err != nil {
		return err
	}
	c.m = m
	return nil
}
