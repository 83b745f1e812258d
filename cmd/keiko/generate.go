package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/mrhapile/keiko-bundler/pkg/bundler"
	"github.com/mrhapile/keiko-bundler/pkg/config"
	"github.com/mrhapile/keiko-bundler/pkg/types"
)

var (
	genConfigPath string
	genOutputDir  string
	genArchive    string
	genFontPath   string
	genGlyph      string
	genCacheName  string
	genReportPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the web app and write the zip archive",
	Long: `Writes into the output directory:
  - icons/apple-touch-icon-180.png, icons/icon-192.png, icons/icon-512.png
  - manifest.webmanifest
  - sw.js
  - index.html

then zips the directory. Existing files are overwritten. When the font
cannot render the glyph, icons get a white dot instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genConfigPath, "config", "c", "", "YAML config file")
	generateCmd.Flags().StringVarP(&genOutputDir, "output-dir", "o", "", "Directory to write the web app into (default "+config.DefaultOutputDir+")")
	generateCmd.Flags().StringVar(&genArchive, "archive", "", "Zip file to write (default "+config.DefaultArchivePath+")")
	generateCmd.Flags().StringVar(&genFontPath, "font", "", "TrueType/OpenType font for the icon glyph")
	generateCmd.Flags().StringVar(&genGlyph, "glyph", "", "Text drawn on the icons")
	generateCmd.Flags().StringVar(&genCacheName, "cache-name", "", "Service worker cache name")
	generateCmd.Flags().StringVar(&genReportPath, "report", "", "Write a YAML inventory of the archive to this file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := config.Load(genConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir = genOutputDir
	}
	if flags.Changed("archive") {
		cfg.ArchivePath = genArchive
	}
	if flags.Changed("font") {
		cfg.FontPath = genFontPath
	}
	if flags.Changed("glyph") {
		cfg.Glyph = genGlyph
	}
	if flags.Changed("cache-name") {
		cfg.CacheName = genCacheName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := bundler.Build(bundler.WithConfig(cfg), bundler.WithLogger(log.Logger))
	if err != nil {
		return err
	}

	for _, ic := range result.Icons {
		if !ic.Glyph {
			log.Warn().Str("icon", ic.Path).Str("reason", ic.Fallback).Msg("glyph not drawn, used fallback dot")
		}
	}

	if genReportPath != "" {
		if err := writeReport(genReportPath, result.Inventory); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.ArchivePath)
	return nil
}

func writeReport(path string, inv types.Inventory) error {
	data, err := yaml.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
