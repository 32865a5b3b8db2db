package rotini

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/rotini/pkg/rotini/constants"
	"github.com/BrandonKowalski/rotini/pkg/rotini/display"
	"github.com/BrandonKowalski/rotini/pkg/rotini/internal"
)

// Config is the TOML-backed device configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Input   InputConfig   `toml:"input"`
	Menu    MenuConfig    `toml:"menu"`
	Logging LoggingConfig `toml:"logging"`
}

// DisplayConfig describes the attached character LCD.
type DisplayConfig struct {
	Cols    int   `toml:"cols"`
	Rows    int   `toml:"rows"`
	I2CAddr uint8 `toml:"i2c_addr"`
}

// InputConfig names the evdev nodes for the encoder and its button.
type InputConfig struct {
	EncoderDevice string `toml:"encoder_device"`
	ButtonDevice  string `toml:"button_device"`
	ButtonCode    uint16 `toml:"button_code"`
}

// MenuConfig holds menu behavior settings.
type MenuConfig struct {
	// TimeoutSeconds is the idle period before falling back to the main
	// menu. Zero disables the timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// LoggingConfig controls the package logger.
type LoggingConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// DefaultConfig returns the stock 20x4 setup.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Cols:    constants.DefaultCols,
			Rows:    constants.DefaultRows,
			I2CAddr: 0x27,
		},
		Input: InputConfig{
			EncoderDevice: "/dev/input/event0",
			ButtonDevice:  "/dev/input/event1",
			ButtonCode:    28, // KEY_ENTER
		},
		Menu: MenuConfig{
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level: "error",
		},
	}
}

// LoadConfig reads a TOML file over the defaults, validates the result, and
// applies the logging settings.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, &ConfigurationError{Field: "file", Reason: "decode " + path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Logging.Path != "" {
		internal.SetLogPath(cfg.Logging.Path)
	}
	if cfg.Logging.Level != "" {
		internal.SetRawLogLevel(cfg.Logging.Level)
	}
	return cfg, nil
}

// Validate checks the field ranges.
func (c Config) Validate() error {
	if c.Display.Cols < 2 {
		return &ConfigurationError{Field: "display.cols", Reason: fmt.Sprintf("%d is too narrow, need at least 2", c.Display.Cols)}
	}
	if c.Display.Rows < 1 {
		return &ConfigurationError{Field: "display.rows", Reason: fmt.Sprintf("%d rows, need at least 1", c.Display.Rows)}
	}
	if c.Input.EncoderDevice == "" {
		return &ConfigurationError{Field: "input.encoder_device", Reason: "empty device path"}
	}
	if c.Menu.TimeoutSeconds < 0 {
		return &ConfigurationError{Field: "menu.timeout_seconds", Reason: "negative timeout"}
	}
	return nil
}

// Geometry returns the display geometry.
func (c Config) Geometry() display.Geometry {
	return display.Geometry{Cols: c.Display.Cols, Rows: c.Display.Rows}
}

// Timeout returns the idle timeout as a duration; zero means disabled.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Menu.TimeoutSeconds) * time.Second
}
