package bundler

import (
	"path"

	"github.com/mrhapile/keiko-bundler/pkg/types"
)

const (
	IconsDir        = "icons"
	IndexFile       = "index.html"
	WebManifestFile = "manifest.webmanifest"
	WorkerFile      = "sw.js"

	TouchIconFile = "apple-touch-icon-180.png"
	Icon192File   = "icon-192.png"
	Icon512File   = "icon-512.png"
)

// DefaultIcons returns the apple-touch icon and the two app icons.
func DefaultIcons(glyph string) []types.IconSpec {
	return []types.IconSpec{
		{Size: 180, Filename: TouchIconFile, Glyph: glyph},
		{Size: 192, Filename: Icon192File, Glyph: glyph},
		{Size: 512, Filename: Icon512File, Glyph: glyph},
	}
}

// iconPath is the slash-separated path of an icon relative to the base dir.
func iconPath(filename string) string {
	return path.Join(IconsDir, filename)
}

// offlineAssets lists what the service worker precaches, in cache order.
// "./" is the start URL and resolves to index.html when served.
func offlineAssets() []string {
	return []string{
		"./",
		"./" + IndexFile,
		"./" + WebManifestFile,
		"./" + iconPath(Icon192File),
		"./" + iconPath(Icon512File),
		"./" + iconPath(TouchIconFile),
	}
}
