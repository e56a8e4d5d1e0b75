// Package config handles tool configuration loading and management.
package config

// Config holds all wmttool settings.
type Config struct {
	Maps     MapsConfig     `yaml:"maps"`
	Generate GenerateConfig `yaml:"generate"`
	Check    CheckConfig    `yaml:"check"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MapsConfig holds map file lookup settings.
type MapsConfig struct {
	SearchPaths []string `yaml:"search_paths"` // Directories searched for bare map names
}

// GenerateConfig holds defaults for the gen command.
type GenerateConfig struct {
	RoomsX     int     `yaml:"rooms_x"`
	RoomsY     int     `yaml:"rooms_y"`
	RoomSize   float32 `yaml:"room_size"`
	Jitter     float32 `yaml:"jitter"`
	MinCeiling float32 `yaml:"min_ceiling"`
	MaxCeiling float32 `yaml:"max_ceiling"`
	Seed       uint32  `yaml:"seed"`
}

// CheckConfig holds defaults for the check command.
type CheckConfig struct {
	Strict bool `yaml:"strict"` // Treat warnings as errors
	JSON   bool `yaml:"json"`   // Emit reports as JSON
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Maps: MapsConfig{
			SearchPaths: []string{".", "maps"},
		},
		Generate: GenerateConfig{
			RoomsX:     3,
			RoomsY:     3,
			RoomSize:   4,
			Jitter:     0.15,
			MinCeiling: 1,
			MaxCeiling: 2,
			Seed:       1,
		},
		Check: CheckConfig{
			Strict: false,
			JSON:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
