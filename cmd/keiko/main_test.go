package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"

	"github.com/mrhapile/keiko-bundler/pkg/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	setupLogging(&bytes.Buffer{})
	root := t.TempDir()
	outDir := filepath.Join(root, "keiko_pwa")
	archive := filepath.Join(root, ".keiko-pwa.zip")
	report := filepath.Join(root, "report.yaml")
	cfgPath := filepath.Join(root, "keiko.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("cache_name: keiko-test\ntimestamp: 2024-01-01T00:00:00Z\n"), 0o644))

	out, err := execute(t, "generate",
		"--config", cfgPath,
		"--output-dir", outDir,
		"--archive", archive,
		"--font", "",
		"--report", report,
	)
	require.NoError(t, err)
	assert.Equal(t, archive, strings.TrimSpace(out))

	zr, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 6)

	sw, err := os.ReadFile(filepath.Join(outDir, "sw.js"))
	require.NoError(t, err)
	assert.Contains(t, string(sw), "'keiko-test'")

	raw, err := os.ReadFile(report)
	require.NoError(t, err)
	var inv types.Inventory
	require.NoError(t, yaml.Unmarshal(raw, &inv))
	assert.Equal(t, 6, inv.TotalFiles)
	assert.Len(t, inv.Files, 6)
	assert.Equal(t, 2024, inv.GeneratedAt.Year())
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("no_such_key: 1\n"), 0o644))

	_, err := execute(t, "generate", "--config", cfgPath)
	assert.Error(t, err)
}

func TestDrawKihon(t *testing.T) {
	out, err := execute(t, "draw", "kihon", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Kihon – 5 zufällige Kombinationen")
	assert.Contains(t, out, "Kombination 5")
	assert.NotContains(t, out, "Kombination 6")

	again, err := execute(t, "draw", "kihon", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again, "a fixed seed repeats the draw")
}

func TestDrawKata(t *testing.T) {
	out, err := execute(t, "draw", "kata", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Tokui Kata")
	assert.Contains(t, out, "4. ")
}

func TestDrawRejectsUnknownScreen(t *testing.T) {
	_, err := execute(t, "draw", "home")
	assert.Error(t, err)
}
