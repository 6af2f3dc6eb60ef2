package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithBuildWorkers sets the number of worker goroutines building meshes during Prepare.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of build workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBuildWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		s.buildWorkers = max(n, 1)
	}
}

// WithHairTransform places the hair cube in world space. Defaults to identity.
//
// Parameters:
//   - transform: the hair cube's model matrix
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithHairTransform(transform mgl32.Mat4) SceneBuilderOption {
	return func(s *scene) {
		s.drawables = []meshDrawable{NewLightCube(), NewHairCube(transform)}
	}
}

// WithLogger sets the scene logger.
func WithLogger(logger zerolog.Logger) SceneBuilderOption {
	return func(s *scene) {
		s.logger = logger
	}
}

// withDrawables replaces the scene's drawables.
func withDrawables(drawables ...meshDrawable) SceneBuilderOption {
	return func(s *scene) {
		s.drawables = drawables
	}
}
