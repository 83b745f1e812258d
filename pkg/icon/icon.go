// Package icon renders the dojo-style app icons: a crimson disc on washi
// paper with a white glyph, or a white dot when no font can draw the glyph.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/mrhapile/keiko-bundler/pkg/types"
)

var (
	Background = color.NRGBA{248, 245, 242, 255}
	Crimson    = color.NRGBA{179, 32, 32, 255}
	GlyphFill  = color.NRGBA{255, 255, 255, 255}
	DotFill    = color.NRGBA{255, 255, 255, 220}
)

const (
	discRatio  = 0.36
	glyphRatio = 0.26
	dotRatio   = 0.08
)

// Renderer draws icons. A nil font always takes the fallback path.
type Renderer struct {
	font    *opentype.Font
	fontErr error
	log     zerolog.Logger
}

// NewRenderer returns a renderer using the font at fontPath. A font that
// cannot be read or parsed is not an error: icons fall back to the dot.
func NewRenderer(fontPath string, log zerolog.Logger) *Renderer {
	r := &Renderer{log: log}
	if fontPath == "" {
		r.fontErr = fmt.Errorf("no font configured")
		return r
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		r.fontErr = fmt.Errorf("read font: %w", err)
		return r
	}
	return NewRendererFromFont(data, log)
}

// NewRendererFromFont parses raw font bytes.
func NewRendererFromFont(data []byte, log zerolog.Logger) *Renderer {
	r := &Renderer{log: log}
	f, err := opentype.Parse(data)
	if err != nil {
		r.fontErr = fmt.Errorf("parse font: %w", err)
		return r
	}
	r.font = f
	return r
}

// Draw renders spec into an image and reports whether the glyph was drawn.
// When it was not, reason says why.
func (r *Renderer) Draw(spec types.IconSpec) (img *image.NRGBA, glyph bool, reason string) {
	size := spec.Size
	img = image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	cx, cy := size/2, size/2
	disc := circleMask(img.Bounds(), cx, cy, int(float64(size)*discRatio))
	draw.DrawMask(img, img.Bounds(), image.NewUniform(Crimson), image.Point{}, disc, image.Point{}, draw.Over)

	face, ok, reason := r.glyphFace(size, spec.Glyph)
	if ok {
		defer face.Close()
		drawCentered(img, face, cx, cy, spec.Glyph)
		return img, true, ""
	}
	// The dot replaces the disc pixels, keeping its translucency.
	replaceMasked(img, circleMask(img.Bounds(), cx, cy, int(float64(size)*dotRatio)), DotFill)
	return img, false, reason
}

// Write renders spec and saves it as PNG inside dir.
func (r *Renderer) Write(dir string, spec types.IconSpec) (types.IconResult, error) {
	if spec.Size <= 0 {
		return types.IconResult{}, fmt.Errorf("icon %s: invalid size %d", spec.Filename, spec.Size)
	}
	img, glyph, reason := r.Draw(spec)
	if !glyph {
		r.log.Debug().Str("icon", spec.Filename).Str("reason", reason).Msg("glyph unavailable, drawing fallback dot")
	}

	p := filepath.Join(dir, spec.Filename)
	if err := writePNG(p, img); err != nil {
		return types.IconResult{}, fmt.Errorf("icon %s: %w", spec.Filename, err)
	}
	return types.IconResult{Path: p, Size: spec.Size, Glyph: glyph, Fallback: reason}, nil
}

// glyphFace decides between the glyph and the fallback dot.
func (r *Renderer) glyphFace(size int, text string) (font.Face, bool, string) {
	if text == "" {
		return nil, false, "no glyph requested"
	}
	if r.font == nil {
		return nil, false, r.fontErr.Error()
	}

	var buf sfnt.Buffer
	for _, ch := range text {
		idx, err := r.font.GlyphIndex(&buf, ch)
		if err != nil {
			return nil, false, fmt.Sprintf("glyph lookup %q: %v", ch, err)
		}
		if idx == 0 {
			return nil, false, fmt.Sprintf("font has no glyph for %q", ch)
		}
	}

	px := int(float64(size) * glyphRatio)
	if px <= 0 {
		return nil, false, fmt.Sprintf("glyph size %d too small", px)
	}
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, false, fmt.Sprintf("create face: %v", err)
	}
	return face, true, ""
}

// drawCentered draws text so its ink bounds are centered on (cx, cy).
func drawCentered(dst draw.Image, face font.Face, cx, cy int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(GlyphFill),
		Face: face,
	}
	b, _ := d.BoundString(text)
	w := b.Max.X - b.Min.X
	h := b.Max.Y - b.Min.Y
	d.Dot = fixed.Point26_6{
		X: fixed.I(cx) - w/2 - b.Min.X,
		Y: fixed.I(cy) - h/2 - b.Min.Y,
	}
	d.DrawString(text)
}

// circleMask rasterizes an anti-aliased disc into a coverage mask.
func circleMask(r image.Rectangle, cx, cy, radius int) *image.Alpha {
	mask := image.NewAlpha(r)
	if radius <= 0 {
		return mask
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())

	// Four cubic arcs; k places the control points for a quarter circle.
	const k = 0.5522847498
	x, y, rad := float32(cx), float32(cy), float32(radius)
	kr := rad * k
	z.MoveTo(x+rad, y)
	z.CubeTo(x+rad, y+kr, x+kr, y+rad, x, y+rad)
	z.CubeTo(x-kr, y+rad, x-rad, y+kr, x-rad, y)
	z.CubeTo(x-rad, y-kr, x-kr, y-rad, x, y-rad)
	z.CubeTo(x+kr, y-rad, x+rad, y-kr, x+rad, y)
	z.ClosePath()
	z.Draw(mask, r, image.Opaque, image.Point{})
	return mask
}

// replaceMasked sets c wherever mask is fully covered and moves partially
// covered pixels toward c, alpha included. Uncovered pixels are untouched.
// draw.Src with a mask would clear those instead.
func replaceMasked(dst *image.NRGBA, mask *image.Alpha, c color.NRGBA) {
	b := dst.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			switch m {
			case 0:
			case 0xff:
				dst.SetNRGBA(x, y, c)
			default:
				d := dst.NRGBAAt(x, y)
				dst.SetNRGBA(x, y, color.NRGBA{
					R: lerp8(d.R, c.R, m),
					G: lerp8(d.G, c.G, m),
					B: lerp8(d.B, c.B, m),
					A: lerp8(d.A, c.A, m),
				})
			}
		}
	}
}

func lerp8(from, to uint8, m uint32) uint8 {
	return uint8((uint32(from)*(0xff-m) + uint32(to)*m + 0x7f) / 0xff)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
