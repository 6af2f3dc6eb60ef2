package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the optional config file looked up in the working directory.
const ConfigName = "oxy-viewer"

// Vec3 is a 3-component vector as it appears in config files.
type Vec3 struct {
	X float32 `mapstructure:"x"`
	Y float32 `mapstructure:"y"`
	Z float32 `mapstructure:"z"`
}

// Vec returns the vector as an mgl32.Vec3.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	VSync  bool   `mapstructure:"vsync"`
}

// CameraConfig holds the initial camera state. Angles are in degrees.
type CameraConfig struct {
	Position   Vec3    `mapstructure:"position"`
	Up         Vec3    `mapstructure:"up"`
	Yaw        float32 `mapstructure:"yaw"`
	Pitch      float32 `mapstructure:"pitch"`
	MoveSpeed  float32 `mapstructure:"moveSpeed"`
	MouseSpeed float32 `mapstructure:"mouseSpeed"`
	Fov        float32 `mapstructure:"fov"`
	Aspect     float32 `mapstructure:"aspect"`
	Near       float32 `mapstructure:"near"`
	Far        float32 `mapstructure:"far"`
}

// LightConfig holds the scene light.
type LightConfig struct {
	Position  Vec3    `mapstructure:"position"`
	Color     Vec3    `mapstructure:"color"`
	Intensity float32 `mapstructure:"intensity"`
}

// InputConfig holds key bindings by action name and the cursor release key.
type InputConfig struct {
	Bindings   map[string]string `mapstructure:"bindings"`
	ReleaseKey string            `mapstructure:"releaseKey"`
}

// Config is the viewer configuration.
type Config struct {
	LogLevel    string       `mapstructure:"logLevel"`
	RefreshRate float64      `mapstructure:"refreshRate"`
	Profiling   bool         `mapstructure:"profiling"`
	Window      WindowConfig `mapstructure:"window"`
	Camera      CameraConfig `mapstructure:"camera"`
	Light       LightConfig  `mapstructure:"light"`
	Input       InputConfig  `mapstructure:"input"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("refreshRate", 61)
	v.SetDefault("profiling", false)

	v.SetDefault("window.title", "kajiya-kay demo")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.vsync", true)

	v.SetDefault("camera.position.x", 0)
	v.SetDefault("camera.position.y", 0)
	v.SetDefault("camera.position.z", 3)
	v.SetDefault("camera.up.x", 0)
	v.SetDefault("camera.up.y", 1)
	v.SetDefault("camera.up.z", 0)
	v.SetDefault("camera.yaw", 90)
	v.SetDefault("camera.pitch", 0)
	v.SetDefault("camera.moveSpeed", 2.5)
	v.SetDefault("camera.mouseSpeed", 40)
	v.SetDefault("camera.fov", 45)
	v.SetDefault("camera.aspect", 1.6)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 100)

	v.SetDefault("light.position.x", 2)
	v.SetDefault("light.position.y", 0.9)
	v.SetDefault("light.position.z", -4)
	v.SetDefault("light.color.x", 1)
	v.SetDefault("light.color.y", 1)
	v.SetDefault("light.color.z", 1)
	v.SetDefault("light.intensity", 1)

	v.SetDefault("input.bindings", map[string]any{
		"forward":      "W",
		"backward":     "S",
		"strafe_left":  "A",
		"strafe_right": "D",
		"descend":      "LeftShift",
		"ascend":       "Space",
	})
	v.SetDefault("input.releaseKey", "Escape")
}

// RegisterFlags adds the viewer's command line flags to fs.
//
// Parameters:
//   - fs: the flag set to register on
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a JSON, YAML or TOML config file")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.Float64("refresh-rate", 61, "target frame rate in Hz")
	fs.Bool("profiling", false, "log frame rate and memory statistics")
	fs.Int("width", 800, "initial window width")
	fs.Int("height", 600, "initial window height")
}

// Load parses args into fs, then merges defaults, the config file and flags, in increasing precedence.
// Flags are registered on fs if they are not already.
//
// Parameters:
//   - fs: the flag set to parse
//   - args: command line arguments without the program name
//
// Returns:
//   - Config: the merged configuration
//   - error: a flag, config file or decoding error
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	if fs.Lookup("config") == nil {
		RegisterFlags(fs)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	for key, flag := range map[string]string{
		"logLevel":      "log-level",
		"refreshRate":   "refresh-rate",
		"profiling":     "profiling",
		"window.width":  "width",
		"window.height": "height",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("error binding flag %q: %w", flag, err)
		}
	}

	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that no component validates on its own: window size,
// binding names, one action per key and a release key that no action uses.
//
// Returns:
//   - error: the first invalid setting
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	bindings, err := c.Bindings()
	if err != nil {
		return err
	}
	releaseKey, err := c.ReleaseKey()
	if err != nil {
		return err
	}
	// the release key is consumed before bindings are consulted
	if action, ok := bindings[releaseKey]; ok {
		return fmt.Errorf("release key %q is also bound to %s", c.Input.ReleaseKey, action)
	}
	return nil
}

// CameraOptions converts the camera settings into camera builder options.
// The field of view is converted from degrees to radians.
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c Config) CameraOptions() []camera.CameraBuilderOption {
	cc := c.Camera
	return []camera.CameraBuilderOption{
		camera.WithPosition(cc.Position.X, cc.Position.Y, cc.Position.Z),
		camera.WithUp(cc.Up.X, cc.Up.Y, cc.Up.Z),
		camera.WithYaw(cc.Yaw),
		camera.WithPitch(cc.Pitch),
		camera.WithMoveSpeed(cc.MoveSpeed),
		camera.WithMouseSpeed(cc.MouseSpeed),
		camera.WithFov(mgl32.DegToRad(cc.Fov)),
		camera.WithAspect(cc.Aspect),
		camera.WithNear(cc.Near),
		camera.WithFar(cc.Far),
	}
}

// Bindings resolves the action to key name map into input bindings.
//
// Returns:
//   - input.Bindings: key code to action
//   - error: an error naming the first unknown action, unknown key or key bound twice, in action name order
func (c Config) Bindings() (input.Bindings, error) {
	names := make([]string, 0, len(c.Input.Bindings))
	for name := range c.Input.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	bindings := make(input.Bindings, len(names))
	for _, name := range names {
		action, ok := input.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q in input bindings", name)
		}
		keyName := c.Input.Bindings[name]
		key, ok := common.KeyByName(keyName)
		if !ok {
			return nil, fmt.Errorf("unknown key %q bound to %s", keyName, action)
		}
		if other, dup := bindings[key]; dup {
			return nil, fmt.Errorf("key %q is bound to both %s and %s", keyName, other, action)
		}
		bindings[key] = action
	}
	return bindings, nil
}

// ReleaseKey resolves the key that releases the captured cursor.
//
// Returns:
//   - uint32: the key code
//   - error: an error if the key name is unknown
func (c Config) ReleaseKey() (uint32, error) {
	key, ok := common.KeyByName(c.Input.ReleaseKey)
	if !ok {
		return 0, fmt.Errorf("unknown release key %q", c.Input.ReleaseKey)
	}
	return key, nil
}
