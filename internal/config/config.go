package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	Game              Game          `mapstructure:"game" yaml:"game"`
}

// Game holds the session pacing knobs. Tests compress these to run quickly;
// production values match the reference client countdown.
type Game struct {
	QuestionTime time.Duration `mapstructure:"question_time" yaml:"question_time"`
	RevealDelay  time.Duration `mapstructure:"reveal_delay" yaml:"reveal_delay"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":3000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		Game: Game{
			QuestionTime: 10 * time.Second,
			RevealDelay:  800 * time.Millisecond,
		},
	}
}
