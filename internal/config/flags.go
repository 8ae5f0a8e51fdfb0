package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagNoCollision = flag.Bool("no-collision", false, "Disable building collision")
	flagNoGravity   = flag.Bool("no-gravity", false, "Disable gravity")
	flagNoBob       = flag.Bool("no-bob", false, "Disable camera bob")
	flagSpeed       = flag.Float64("speed", 0, "Base movement speed override")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagNoCollision {
		cfg.Engine.CollisionEnabled = false
	}
	if *flagNoGravity {
		cfg.Engine.GravityEnabled = false
	}
	if *flagNoBob {
		cfg.Engine.CameraBobEnabled = false
	}
	if *flagSpeed > 0 {
		cfg.Engine.BaseSpeed = float32(*flagSpeed)
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
