package bundler

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrhapile/keiko-bundler/pkg/types"
)

// WebManifest returns the fixed descriptor of the Keiko app.
func WebManifest() types.WebManifest {
	return types.WebManifest{
		Name:            "Keiko Generator",
		ShortName:       "Keiko",
		Description:     "Zufällige Kihon-Kombinationen und Kata-Vorschläge – Für 3. Dan – DJKB (Stand: Juli 2013).",
		StartURL:        "./",
		Scope:           "./",
		Display:         "standalone",
		Orientation:     "portrait",
		BackgroundColor: "#f8f5f2",
		ThemeColor:      "#111111",
		Icons: []types.ManifestIcon{
			{Src: iconPath(Icon192File), Sizes: "192x192", Type: "image/png"},
			{Src: iconPath(Icon512File), Sizes: "512x512", Type: "image/png", Purpose: "any maskable"},
		},
	}
}

// marshalManifest encodes m as indented JSON without escaping HTML or
// non-ASCII characters.
func marshalManifest(m types.WebManifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to marshal web manifest: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// InventoryBuilder records the size and SHA256 of each web app file as it is
// zipped, in archive order.
type InventoryBuilder struct {
	inventory types.Inventory
}

// NewInventoryBuilder starts an empty inventory stamped with the archive
// entry time.
func NewInventoryBuilder(version string, ts time.Time) *InventoryBuilder {
	return &InventoryBuilder{
		inventory: types.Inventory{
			Version:     version,
			GeneratedAt: ts,
			Files:       []types.FileEntry{},
		},
	}
}

// AddFile records one zipped file under its archive entry name.
func (ib *InventoryBuilder) AddFile(path string, data []byte) {
	hash := sha256.Sum256(data)
	ib.inventory.Files = append(ib.inventory.Files, types.FileEntry{
		Path:   path,
		Size:   int64(len(data)),
		SHA256: hex.EncodeToString(hash[:]),
	})
	ib.inventory.TotalFiles++
}

// Build seals the inventory with a hash over the per-file hashes, so two
// archives of the same web app can be compared by one value.
func (ib *InventoryBuilder) Build() types.Inventory {
	hasher := sha256.New()
	for _, f := range ib.inventory.Files {
		hasher.Write([]byte(f.SHA256))
	}
	ib.inventory.ContentHash = hex.EncodeToString(hasher.Sum(nil))
	return ib.inventory
}
