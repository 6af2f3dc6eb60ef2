package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLight(t *testing.T) {
	l := NewLight()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Color())
	assert.Equal(t, mgl32.Vec3{}, l.Position())
	assert.Equal(t, float32(1), l.Intensity())

	l = NewLight(WithPosition(2, 0.9, -4), WithColor(1, 0.5, 0.25), WithIntensity(3))
	assert.Equal(t, mgl32.Vec3{2, 0.9, -4}, l.Position())
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0.25}, l.Color())
	assert.Equal(t, float32(3), l.Intensity())
}

func TestGPULight_Marshal(t *testing.T) {
	l := NewLight(WithPosition(2, 0.9, -4), WithColor(1, 0.5, 0.25), WithIntensity(3))
	g := NewGPULight(l)

	buf := g.Marshal()
	require.Len(t, buf, GPULightSize)

	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(2), f(0))
	assert.Equal(t, float32(-4), f(8))
	assert.Equal(t, float32(3), f(12))
	assert.Equal(t, float32(1), f(16))
	assert.Equal(t, float32(0.25), f(24))
	assert.Equal(t, float32(0), f(28))
	assert.Contains(t, GPULightSource, "intensity: f32")
}
