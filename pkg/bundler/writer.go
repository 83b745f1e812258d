package bundler

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveWriter zips a directory tree with deterministic ordering and
// timestamps.
type ArchiveWriter struct {
	baseDir string // Root of the tree; entry names are relative to it
	ts      time.Time
}

// NewArchiveWriter creates a new writer instance.
func NewArchiveWriter(baseDir string, ts time.Time) *ArchiveWriter {
	return &ArchiveWriter{baseDir: baseDir, ts: ts}
}

// collect returns the regular files under the base dir as slash-separated
// relative paths in lexical order. Paths in skip are left out.
func (w *ArchiveWriter) collect(skip ...string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(w.baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		for _, s := range skip {
			if abs == s {
				return nil
			}
		}
		rel, err := filepath.Rel(w.baseDir, p)
		if err != nil {
			return err
		}
		paths = append(paths, entryName(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", w.baseDir, err)
	}
	return paths, nil
}

// entryName normalizes a relative OS path into a zip entry name.
func entryName(rel string) string {
	name := filepath.ToSlash(rel)
	for strings.HasPrefix(name, "./") {
		name = name[2:]
	}
	return strings.TrimLeft(name, "/")
}

// WriteToDisk zips every regular file under the base dir into archivePath.
// The archive is assembled in a temporary file and renamed into place, so a
// failed run never leaves a truncated archive under the final name. It
// returns the absolute archive path and the total uncompressed size.
func (w *ArchiveWriter) WriteToDisk(archivePath string, inv *InventoryBuilder) (_ string, _ int64, err error) {
	absPath, err := filepath.Abs(archivePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	tmpPath := absPath + ".tmp"

	paths, err := w.collect(absPath, tmpPath)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create archive directory: %w", err)
	}
	f, err := os.Create(tmpPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create archive file: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	zw := zip.NewWriter(f)
	var totalSize int64
	for _, p := range paths {
		content, err := os.ReadFile(filepath.Join(w.baseDir, filepath.FromSlash(p)))
		if err != nil {
			return "", 0, fmt.Errorf("failed to read %s: %w", p, err)
		}

		header := &zip.FileHeader{
			Name:     p,
			Method:   zip.Deflate,
			Modified: w.ts,
		}
		header.SetMode(0644)

		fw, err := zw.CreateHeader(header)
		if err != nil {
			return "", 0, fmt.Errorf("failed to write header for %s: %w", p, err)
		}
		if _, err := fw.Write(content); err != nil {
			return "", 0, fmt.Errorf("failed to write content for %s: %w", p, err)
		}
		if inv != nil {
			inv.AddFile(p, content)
		}
		totalSize += int64(len(content))
	}

	if err := zw.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close archive: %w", err)
	}
	if err := os.Rename(tmpPath, absPath); err != nil {
		return "", 0, fmt.Errorf("failed to move archive into place: %w", err)
	}
	return absPath, totalSize, nil
}
