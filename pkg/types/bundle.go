package types

// IconSpec describes one icon to render.
type IconSpec struct {
	Size     int    // Edge length in pixels; icons are square
	Filename string // File name inside the icons directory
	Glyph    string // Text drawn on the disc, if a font can render it
}

// StaticAsset is a generated text file, written once.
type StaticAsset struct {
	Path    string // Relative to the base output directory
	Content []byte
}

// IconResult records how a single icon was produced.
type IconResult struct {
	Path string `json:"path" yaml:"path"`
	Size int    `json:"size" yaml:"size"`
	// Glyph is false when the fallback dot was drawn instead of text.
	Glyph bool `json:"glyph" yaml:"glyph"`
	// Fallback says why the glyph was skipped.
	Fallback string `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// BundleResult represents the output of a successful bundling operation.
type BundleResult struct {
	ArchivePath string       // The absolute path to the generated archive file
	BaseDir     string       // The absolute path of the generated output tree
	FileCount   int          // Total number of files archived
	Inventory   Inventory    // Per-file checksums of the archived tree
	Icons       []IconResult // One entry per rendered icon
	SizeBytes   int64        // Total uncompressed size of the archived files
}
