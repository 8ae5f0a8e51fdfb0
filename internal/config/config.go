// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Input   InputConfig   `yaml:"input"`
	World   WorldConfig   `yaml:"world"`
	Window  WindowConfig  `yaml:"window"`
	Audio   AudioConfig   `yaml:"audio"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig holds locomotion tuning.
type EngineConfig struct {
	// BaseSpeed is horizontal speed in world units per frame at the
	// 60 Hz baseline.
	BaseSpeed        float32 `yaml:"base_speed"`
	EyeHeight        float32 `yaml:"eye_height"`
	GravityEnabled   bool    `yaml:"gravity_enabled"`
	CollisionEnabled bool    `yaml:"collision_enabled"`
	CameraBobEnabled bool    `yaml:"camera_bob_enabled"`
}

// InputConfig holds look/rotation tuning.
type InputConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // radians per pixel
	RotationRate     float32 `yaml:"rotation_rate"`     // radians per second (keyboard)
	InvertY          bool    `yaml:"invert_y"`
}

// WorldConfig holds grid layout parameters.
type WorldConfig struct {
	GridSize          float32 `yaml:"grid_size"`          // world units per cell
	FloorHeight       float32 `yaml:"floor_height"`       // building height per floor
	BuildingFootprint float32 `yaml:"building_footprint"` // fraction of a cell
	HalfExtentCells   int     `yaml:"half_extent_cells"`
}

// WindowConfig holds SDL window settings for the demo host.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// AudioConfig holds footstep audio settings.
type AudioConfig struct {
	MasterVolume   float64 `yaml:"master_volume"`
	FootstepVolume float64 `yaml:"footstep_volume"`
	Muted          bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			BaseSpeed:        0.05,
			EyeHeight:        1.6,
			GravityEnabled:   true,
			CollisionEnabled: true,
			CameraBobEnabled: true,
		},
		Input: InputConfig{
			MouseSensitivity: 0.002,
			RotationRate:     2.0,
			InvertY:          false,
		},
		World: WorldConfig{
			GridSize:          1.0,
			FloorHeight:       1.2,
			BuildingFootprint: 0.7,
			HalfExtentCells:   50,
		},
		Window: WindowConfig{
			Title:  "citywalk",
			Width:  1280,
			Height: 720,
		},
		Audio: AudioConfig{
			MasterVolume:   0.8,
			FootstepVolume: 0.6,
			Muted:          false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
