package bundler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrhapile/keiko-bundler/pkg/config"
	"github.com/mrhapile/keiko-bundler/pkg/icon"
	"github.com/mrhapile/keiko-bundler/pkg/types"
)

// InventoryVersion is the schema version of types.Inventory.
const InventoryVersion = "v1"

// ErrMissingAsset is returned when a file referenced by the web manifest or
// the service worker is absent from the output tree.
var ErrMissingAsset = errors.New("bundler: referenced asset missing")

// Option configures the bundling process.
type Option func(*options)

type options struct {
	outputDir   string
	archivePath string
	fontPath    string
	glyph       string
	cacheName   string
	timestamp   time.Time
	icons       []types.IconSpec
	log         zerolog.Logger
}

// WithOutputDir sets the base directory the web app is written into.
func WithOutputDir(path string) Option {
	return func(o *options) {
		o.outputDir = path
	}
}

// WithArchivePath sets where the zip is written.
func WithArchivePath(path string) Option {
	return func(o *options) {
		o.archivePath = path
	}
}

// WithFontPath sets the font used for icon glyphs. Empty disables glyphs.
func WithFontPath(path string) Option {
	return func(o *options) {
		o.fontPath = path
	}
}

// WithGlyph sets the text drawn on the icons.
func WithGlyph(glyph string) Option {
	return func(o *options) {
		o.glyph = glyph
	}
}

// WithCacheName sets the service worker cache key.
func WithCacheName(name string) Option {
	return func(o *options) {
		o.cacheName = name
	}
}

// WithTimestamp pins the modification time stamped on every archive entry.
// A zero t is ignored and the run time is kept.
func WithTimestamp(t time.Time) Option {
	return func(o *options) {
		if !t.IsZero() {
			o.timestamp = t
		}
	}
}

// WithIcons replaces the default icon set. The manifest and service worker
// still reference the default files, so the tree check fails if any of
// them is dropped.
func WithIcons(specs []types.IconSpec) Option {
	return func(o *options) {
		o.icons = specs
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithConfig applies every field of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.outputDir = cfg.OutputDir
		o.archivePath = cfg.ArchivePath
		o.fontPath = cfg.FontPath
		o.glyph = cfg.Glyph
		o.cacheName = cfg.CacheName
		if !cfg.Timestamp.IsZero() {
			o.timestamp = cfg.Timestamp
		}
	}
}

// Build generates the web app into the output directory and zips it.
func Build(opts ...Option) (*types.BundleResult, error) {
	// 1. Configure
	o := &options{
		outputDir:   config.DefaultOutputDir,
		archivePath: config.DefaultArchivePath,
		fontPath:    config.DefaultFontPath,
		glyph:       config.DefaultGlyph,
		cacheName:   config.DefaultCacheName,
		timestamp:   time.Now(),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := config.CheckCacheName(o.cacheName); err != nil {
		return nil, err
	}
	if o.icons == nil {
		o.icons = DefaultIcons(o.glyph)
	}
	log := o.log

	baseDir, err := filepath.Abs(o.outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}
	iconsDir := filepath.Join(baseDir, IconsDir)
	if err := os.MkdirAll(iconsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create icons directory: %w", err)
	}
	log.Info().Str("dir", baseDir).Msg("generating web app")

	// 2. Icons
	renderer := icon.NewRenderer(o.fontPath, log)
	iconResults := make([]types.IconResult, 0, len(o.icons))
	for _, spec := range o.icons {
		res, err := renderer.Write(iconsDir, spec)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("icon", spec.Filename).Int("size", spec.Size).Bool("glyph", res.Glyph).Msg("icon written")
		iconResults = append(iconResults, res)
	}

	// 3. Manifest, service worker, page
	assets, err := Assets(o.cacheName)
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		if err := writeAsset(baseDir, a); err != nil {
			return nil, err
		}
		log.Debug().Str("file", a.Path).Int("bytes", len(a.Content)).Msg("asset written")
	}

	// 4. Every referenced file must be present before packaging
	if err := verifyTree(baseDir); err != nil {
		return nil, err
	}

	// 5. Archive
	inv := NewInventoryBuilder(InventoryVersion, o.timestamp)
	archivePath, size, err := NewArchiveWriter(baseDir, o.timestamp).WriteToDisk(o.archivePath, inv)
	if err != nil {
		return nil, fmt.Errorf("failed to write archive: %w", err)
	}
	inventory := inv.Build()
	log.Info().Str("archive", archivePath).Int("files", inventory.TotalFiles).Int64("bytes", size).Msg("archive written")

	return &types.BundleResult{
		ArchivePath: archivePath,
		BaseDir:     baseDir,
		FileCount:   inventory.TotalFiles,
		Inventory:   inventory,
		Icons:       iconResults,
		SizeBytes:   size,
	}, nil
}

func writeAsset(baseDir string, a types.StaticAsset) error {
	p := filepath.Join(baseDir, filepath.FromSlash(a.Path))
	if err := os.WriteFile(p, a.Content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.Path, err)
	}
	return nil
}

// verifyTree checks that the manifest icons and the service worker's
// offline assets exist under baseDir.
func verifyTree(baseDir string) error {
	var refs []string
	for _, ic := range WebManifest().Icons {
		refs = append(refs, ic.Src)
	}
	for _, a := range offlineAssets() {
		if a == "./" {
			continue
		}
		refs = append(refs, strings.TrimPrefix(a, "./"))
	}

	var missing []string
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		info, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(ref)))
		if err != nil || !info.Mode().IsRegular() {
			missing = append(missing, ref)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}
	return nil
}
