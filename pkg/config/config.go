package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// ErrInvalid marks a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid")

const (
	DefaultOutputDir   = "keiko_pwa"
	DefaultArchivePath = ".keiko-pwa.zip"
	DefaultFontPath    = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	DefaultGlyph       = "空手"
	DefaultCacheName   = "keiko-v1"
)

// Config holds the generator settings.
type Config struct {
	// OutputDir is the base directory the web app is written into.
	OutputDir string `yaml:"output_dir"`

	// ArchivePath is where the zip is written.
	ArchivePath string `yaml:"archive_path"`

	// FontPath points at a TrueType/OpenType font for the icon glyph.
	// Empty disables the glyph and always draws the fallback dot.
	FontPath string `yaml:"font_path"`

	Glyph string `yaml:"glyph"`

	// CacheName is the service worker cache key. Changing it evicts old caches.
	CacheName string `yaml:"cache_name"`

	// Timestamp stamps every archive entry. Zero means the time of the run.
	Timestamp time.Time `yaml:"timestamp"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:   DefaultOutputDir,
		ArchivePath: DefaultArchivePath,
		FontPath:    DefaultFontPath,
		Glyph:       DefaultGlyph,
		CacheName:   DefaultCacheName,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalid)
	}
	if strings.TrimSpace(c.ArchivePath) == "" {
		return fmt.Errorf("%w: archive_path is empty", ErrInvalid)
	}
	return CheckCacheName(c.CacheName)
}

// CheckCacheName rejects names that cannot sit inside the service worker's
// single-quoted cache literal.
func CheckCacheName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: cache_name is empty", ErrInvalid)
	}
	if strings.ContainsAny(name, "'\"\\\n\r") {
		return fmt.Errorf("%w: cache_name %q contains quote, backslash or newline", ErrInvalid, name)
	}
	return nil
}
