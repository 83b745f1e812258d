package bundler

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/mrhapile/keiko-bundler/pkg/config"
	"github.com/mrhapile/keiko-bundler/pkg/trainer"
	"github.com/mrhapile/keiko-bundler/pkg/types"
)

//go:embed assets/*.tmpl
var assetFS embed.FS

var templates = template.Must(template.ParseFS(assetFS, "assets/*.tmpl"))

type workerData struct {
	CacheName string
	Assets    []string
}

// pageData feeds index.html. Fields holding script values are JSON literals.
type pageData struct {
	Manifest      types.WebManifest
	ManifestHref  string
	TouchIconHref string
	WorkerHref    string
	Tokui         string
	Kihon         string
	Kata2         string
	Kata3         string
	Kata4         string
	KihonPerDraw  int
}

func renderTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// renderWorker produces sw.js for the given cache name. The name is placed
// in a single-quoted literal and must pass config.CheckCacheName.
func renderWorker(cacheName string) ([]byte, error) {
	out, err := renderTemplate("sw.js.tmpl", workerData{
		CacheName: cacheName,
		Assets:    offlineAssets(),
	})
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(out), nil
}

// renderPage produces index.html with the trainer tables inlined.
func renderPage(m types.WebManifest) ([]byte, error) {
	data := pageData{
		Manifest:      m,
		ManifestHref:  WebManifestFile,
		TouchIconHref: iconPath(TouchIconFile),
		KihonPerDraw:  trainer.KihonPerDraw,
	}

	literals := []struct {
		dst *string
		v   any
	}{
		{&data.WorkerHref, "./" + WorkerFile},
		{&data.Tokui, trainer.TokuiKata},
		{&data.Kihon, trainer.Kihon},
		{&data.Kata2, trainer.Kata2},
		{&data.Kata3, trainer.Kata3},
		{&data.Kata4, trainer.Kata4},
	}
	for _, l := range literals {
		b, err := json.Marshal(l.v)
		if err != nil {
			return nil, fmt.Errorf("render index.html: %w", err)
		}
		*l.dst = string(b)
	}
	return renderTemplate("index.html.tmpl", data)
}

// Assets renders the manifest, service worker and page.
func Assets(cacheName string) ([]types.StaticAsset, error) {
	if err := config.CheckCacheName(cacheName); err != nil {
		return nil, err
	}
	manifest, err := marshalManifest(WebManifest())
	if err != nil {
		return nil, err
	}
	worker, err := renderWorker(cacheName)
	if err != nil {
		return nil, err
	}
	page, err := renderPage(WebManifest())
	if err != nil {
		return nil, err
	}
	return []types.StaticAsset{
		{Path: WebManifestFile, Content: manifest},
		{Path: WorkerFile, Content: worker},
		{Path: IndexFile, Content: page},
	}, nil
}
