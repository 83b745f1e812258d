package types

import "time"

// WebManifest is the installable web application descriptor written to
// manifest.webmanifest.
type WebManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Scope           string         `json:"scope"`
	Display         string         `json:"display"`
	Orientation     string         `json:"orientation"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []ManifestIcon `json:"icons"`
}

// ManifestIcon references one icon file of the web app.
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// Inventory describes the contents of the generated archive.
type Inventory struct {
	// Version is the schema version of the inventory layout.
	Version string `json:"version" yaml:"version"`

	// GeneratedAt is the timestamp stamped on every archive entry.
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`

	// TotalFiles is the count of files included in the archive.
	TotalFiles int `json:"totalFiles" yaml:"totalFiles"`

	// Files lists all files in the archive with their metadata.
	Files []FileEntry `json:"files" yaml:"files"`

	// ContentHash is the SHA256 over the concatenated per-file hashes, in archive order.
	ContentHash string `json:"contentHash" yaml:"contentHash"`
}

// FileEntry represents a single file inside the archive.
type FileEntry struct {
	// Path is the slash-separated path of the file inside the archive.
	Path string `json:"path" yaml:"path"`

	// Size is the size of the file in bytes.
	Size int64 `json:"size" yaml:"size"`

	// SHA256 is the checksum of the file content.
	SHA256 string `json:"sha256" yaml:"sha256"`
}
