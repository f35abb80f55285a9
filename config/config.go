package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/reveal/audio"
	"github.com/lixenwraith/reveal/constants"
	"github.com/lixenwraith/reveal/intro"
)

//go:embed sample_config.toml
var sampleConfig string

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Timings contains the pacing of the presentation in milliseconds.
type Timings struct {
	LineDelayMS  int `toml:"line_delay_ms"`
	TitleDelayMS int `toml:"title_delay_ms"`
	TitleHoldMS  int `toml:"title_hold_ms"`
	ConfettiMS   int `toml:"confetti_ms"`
	FrameMS      int `toml:"frame_ms"`
}

// Audio contains the ambient track settings.
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Path    string  `toml:"path"`
	Volume  float64 `toml:"volume"`
	Muted   bool    `toml:"muted"`
}

// Display contains terminal settings.
type Display struct {
	ColorMode string `toml:"color_mode"`
	Mouse     bool   `toml:"mouse"`
}

// Logging contains configuration for log output.
type Logging struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
}

// Config is the complete runtime configuration.
type Config struct {
	ContentFile string  `toml:"content_file"`
	Timings     Timings `toml:"timings"`
	Audio       Audio   `toml:"audio"`
	Display     Display `toml:"display"`
	Logging     Logging `toml:"logging"`
}

// Color modes accepted by Display.ColorMode.
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timings: Timings{
			LineDelayMS:  int(constants.IntroLineDelay / time.Millisecond),
			TitleDelayMS: int(constants.IntroTitleDelay / time.Millisecond),
			TitleHoldMS:  int(constants.IntroTitleHold / time.Millisecond),
			ConfettiMS:   int(constants.ConfettiDuration / time.Millisecond),
			FrameMS:      int(constants.FrameUpdateInterval / time.Millisecond),
		},
		Audio: Audio{
			Enabled: true,
			Volume:  constants.AmbientVolume,
		},
		Display: Display{
			ColorMode: ColorAuto,
			Mouse:     true,
		},
		Logging: Logging{
			Dir:   "logs",
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the per-user config location.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "reveal", "config.toml"), nil
}

// Load reads the configuration file at path on top of the defaults.
// An empty path falls back to DefaultConfigPath when that file exists.
// Returns the config and the path that was read, empty when only defaults apply.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolved, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}
	if resolved == "" {
		return cfg, "", nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, "", fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, "", fmt.Errorf("decode config %s: %w", resolved, err)
	}

	if cfg.ContentFile != "" && !filepath.IsAbs(cfg.ContentFile) {
		cfg.ContentFile = filepath.Join(filepath.Dir(resolved), cfg.ContentFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, resolved, nil
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return path, nil
	}

	def, err := DefaultConfigPath()
	if err != nil {
		return "", nil
	}
	if _, err := os.Stat(def); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config file: %w", err)
	}
	return def, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	timings := map[string]int{
		"line_delay_ms":  c.Timings.LineDelayMS,
		"title_delay_ms": c.Timings.TitleDelayMS,
		"title_hold_ms":  c.Timings.TitleHoldMS,
		"confetti_ms":    c.Timings.ConfettiMS,
		"frame_ms":       c.Timings.FrameMS,
	}
	for name, v := range timings {
		if v <= 0 {
			return fmt.Errorf("%w: timings.%s must be positive, got %d", ErrInvalid, name, v)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}

	switch c.Display.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: display.color_mode %q", ErrInvalid, c.Display.ColorMode)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// IntroTimings returns the intro sequencer delays.
func (c *Config) IntroTimings() intro.Timings {
	return intro.Timings{
		LineDelay:  ms(c.Timings.LineDelayMS),
		TitleDelay: ms(c.Timings.TitleDelayMS),
		TitleHold:  ms(c.Timings.TitleHoldMS),
	}
}

// ConfettiDuration returns the confetti burst duration.
func (c *Config) ConfettiDuration() time.Duration {
	return ms(c.Timings.ConfettiMS)
}

// FrameInterval returns the render interval.
func (c *Config) FrameInterval() time.Duration {
	return ms(c.Timings.FrameMS)
}

// AudioConfig returns the ambient channel settings.
func (c *Config) AudioConfig() audio.Config {
	return audio.Config{
		Path:   c.Audio.Path,
		Volume: c.Audio.Volume,
		Muted:  c.Audio.Muted,
	}
}

// CreateSample writes the sample configuration to path, refusing to overwrite.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// SampleConfig returns the embedded sample configuration.
func SampleConfig() string {
	return sampleConfig
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
