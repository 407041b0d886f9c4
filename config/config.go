// Package config describes the device an aielib build talks to.
//
// A configuration is a small YAML document naming the device node, the
// array aperture, the shared memory regions handed out by MemInit and the
// simulator and logging settings. Integers may be written in hex.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding the default config path.
const EnvConfig = "AIELIB_CONFIG"

// MaxRegions is the number of regions addressable by a uint8 index.
const MaxRegions = 256

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Device    Device    `yaml:"device"`
	Regions   []Region  `yaml:"regions"`
	Simulator Simulator `yaml:"simulator"`
	Log       Log       `yaml:"log"`
}

// Device is the mapped array aperture used by the Linux target.
type Device struct {
	Path        string  `yaml:"path"`
	ArrayBase   uint64  `yaml:"array_base"`
	ArrayOffset *uint64 `yaml:"array_offset,omitempty"`
	ArraySize   uint64  `yaml:"array_size"`
}

// MapOffset returns the file offset of the aperture in the device node.
func (d Device) MapOffset() uint64 {
	if d.ArrayOffset != nil {
		return *d.ArrayOffset
	}
	return d.ArrayBase
}

// Region is a shared memory region returned by MemInit.
type Region struct {
	Name   string  `yaml:"name"`
	Phys   uint64  `yaml:"phys"`
	Size   uint64  `yaml:"size"`
	Offset *uint64 `yaml:"offset,omitempty"`
}

// MapOffset returns the file offset of the region in the device node.
func (r Region) MapOffset() uint64 {
	if r.Offset != nil {
		return *r.Offset
	}
	return r.Phys
}

func (r Region) end() uint64 { return r.Phys + r.Size }

type Simulator struct {
	Capacity      uint64 `yaml:"capacity"`
	StrictAsserts bool   `yaml:"strict_asserts"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Device: Device{
			Path:      "/dev/mem",
			ArrayBase: 0x20000000000,
			ArraySize: 0x1000000,
		},
		Simulator: Simulator{Capacity: 1 << 36},
		Log:       Log{Level: "info", Format: "text"},
	}
}

// Load reads the configuration at path. An empty path falls back to
// $AIELIB_CONFIG and then to Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the aperture, the regions and the log settings.
func (c *Config) Validate() error {
	if c.Device.ArraySize == 0 {
		return invalid("device.array_size must not be zero")
	}
	if c.Device.ArrayBase+c.Device.ArraySize < c.Device.ArrayBase {
		return invalid("device aperture wraps the address space")
	}
	if len(c.Regions) > MaxRegions {
		return invalid("%d regions, at most %d are addressable", len(c.Regions), MaxRegions)
	}

	sorted := slices.Clone(c.Regions)
	for i, r := range sorted {
		if r.Size == 0 {
			return invalid("region %d (%s) is empty", i, r.Name)
		}
		if r.end() < r.Phys {
			return invalid("region %d (%s) wraps the address space", i, r.Name)
		}
	}
	slices.SortFunc(sorted, func(a, b Region) int {
		switch {
		case a.Phys < b.Phys:
			return -1
		case a.Phys > b.Phys:
			return 1
		}
		return 0
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Phys < sorted[i-1].end() {
			return invalid("regions %s and %s overlap", sorted[i-1].Name, sorted[i].Name)
		}
	}

	if _, err := c.Log.level(); err != nil {
		return invalid("log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return invalid("log.format %q", c.Log.Format)
	}
	return nil
}

func (l Log) level() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}

// NewLogger builds a logger writing to w with the configured level and
// format.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := l.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
