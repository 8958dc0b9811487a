package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Frame buffer width")
	flagHeight     = flag.Int("height", 0, "Frame buffer height")
	flagFullscreen = flag.Bool("fullscreen", false, "Open the window fullscreen")
	flagHeadless   = flag.Bool("headless", false, "Render without a window and write a snapshot")
	flagFrames     = flag.Int("frames", 0, "Frames to render in headless mode")
	flagSnapshot   = flag.String("snapshot", "", "Snapshot output path (.png or .bmp)")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the config file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Screen.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Screen.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Screen.Fullscreen = true
	}
	if *flagHeadless {
		cfg.Output.Headless = true
	}
	if *flagFrames > 0 {
		cfg.Output.Frames = *flagFrames
	}
	if *flagSnapshot != "" {
		cfg.Output.Snapshot = *flagSnapshot
		if format := formatFromPath(*flagSnapshot); format != "" {
			cfg.Output.Format = format
		}
	}
}
