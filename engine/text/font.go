// Package text loads TrueType fonts into a glyph atlas and measures strings.
package text

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/incredimo/mix/engine/core"
)

var ErrAtlasTooLarge = errors.New("text: glyph atlas exceeds max texture size")

// Glyph is one rasterized codepoint. Pixel values are at the font's SizePx.
type Glyph struct {
	Rune     rune
	Advance  float32
	BearingX float32 // left bearing
	BearingY float32 // baseline to glyph top
	W, H     int
	U0, V0   float32 // atlas UVs
	U1, V1   float32
}

type Metrics struct {
	SizePx  float32
	Ascent  float32
	Descent float32 // negative, below the baseline
	LineGap float32
}

func (m Metrics) LineHeight() float32 { return m.Ascent - m.Descent + m.LineGap }

// Font is a rasterized face with its atlas. Lookup is by single codepoint.
type Font struct {
	metrics Metrics
	glyphs  map[rune]Glyph
	kerning map[[2]rune]float32
	atlas   *image.RGBA
	texture core.TextureID
	face    font.Face
}

// Options bound atlas construction.
type Options struct {
	First, Last    rune // inclusive codepoint range, default 32..255
	Padding        int  // pixels between glyphs, default 2
	MaxTextureSize int  // default 4096
}

func (o *Options) defaults() {
	if o.First == 0 && o.Last == 0 {
		o.First, o.Last = 32, 255
	}
	if o.Padding <= 0 {
		o.Padding = 2
	}
	if o.MaxTextureSize <= 0 {
		o.MaxTextureSize = 4096
	}
}

// Default rasterizes the bundled Go Regular face.
func Default(sizePx float32) (*Font, error) {
	return Parse(goregular.TTF, sizePx, Options{})
}

// Load reads a TTF/OTF from fonts/<name> in fsys.
func Load(fsys fs.FS, name string, sizePx float32, opts Options) (*Font, error) {
	data, err := fs.ReadFile(fsys, "fonts/"+name)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(data, sizePx, opts)
}

// Parse builds a white-on-transparent RGBA atlas for opts' codepoint range.
func Parse(ttf []byte, sizePx float32, opts Options) (*Font, error) {
	opts.defaults()

	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	metrics := Metrics{
		SizePx:  sizePx,
		Ascent:  float32(m.Ascent.Round()),
		Descent: float32(-m.Descent.Round()),
	}
	metrics.LineGap = float32(m.Height.Round()) - metrics.Ascent + metrics.Descent

	type bounds struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measured []bounds
	for r := opts.First; r <= opts.Last; r++ {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measured = append(measured, bounds{
			r:   r,
			w:   (b.Max.X - b.Min.X).Ceil(),
			h:   (b.Max.Y - b.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(b.Min.X.Floor()),
			by:  float32(-b.Min.Y.Floor()),
		})
	}

	// Shelf packing; grow the square atlas until everything fits.
	pad := opts.Padding
	size := min(256, opts.MaxTextureSize)
	var pos map[rune]image.Point
	for {
		x, y, rowH := pad, pad, 0
		fits := true
		pos = make(map[rune]image.Point, len(measured))
		for _, g := range measured {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+pad > size {
				x, y, rowH = pad, y+rowH+pad, 0
			}
			if g.w+2*pad > size || y+g.h+pad > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + pad
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > opts.MaxTextureSize {
			_ = face.Close()
			return nil, fmt.Errorf("%w (%d)", ErrAtlasTooLarge, opts.MaxTextureSize)
		}
	}

	atlas := image.NewRGBA(image.Rect(0, 0, size, size))
	d := &font.Drawer{Dst: atlas, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measured))
	for _, g := range measured {
		gl := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			d.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			d.DrawString(string(g.r))
			s := float32(size)
			gl.U0, gl.V0 = float32(p.X)/s, float32(p.Y)/s
			gl.U1, gl.V1 = float32(p.X+g.w)/s, float32(p.Y+g.h)/s
		}
		glyphs[g.r] = gl
	}

	kerning := map[[2]rune]float32{}
	for _, a := range measured {
		for _, b := range measured {
			if k := face.Kern(a.r, b.r); k != 0 {
				kerning[[2]rune{a.r, b.r}] = float32(k) / 64
			}
		}
	}

	return &Font{
		metrics: metrics,
		glyphs:  glyphs,
		kerning: kerning,
		atlas:   atlas,
		face:    face,
	}, nil
}

func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

func (f *Font) Metrics() Metrics { return f.metrics }

// Kern is the extra advance between a and b at SizePx.
func (f *Font) Kern(a, b rune) float32 { return f.kerning[[2]rune{a, b}] }

func (f *Font) Atlas() *image.RGBA { return f.atlas }

// Texture is the arena texture holding the atlas, 0 before Upload.
func (f *Font) Texture() core.TextureID { return f.texture }

// Upload registers the atlas as an RGBA8 texture. Repeated calls reuse the
// first texture.
func (f *Font) Upload(cx *core.Cx) core.TextureID {
	if !f.texture.IsEmpty() {
		return f.texture
	}
	b := f.atlas.Bounds()
	f.texture = cx.CreateTexture(b.Dx(), b.Dy(), core.TextureRGBA8)
	cx.SetTexturePixels(f.texture, f.atlas.Pix)
	return f.texture
}

func (f *Font) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}
