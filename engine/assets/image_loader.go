package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io/fs"
	"path"

	"github.com/incredimo/mix/engine/core"
)

// LoadPNG decodes textures/<name> from fsys into tightly packed RGBA8 pixels
// (row-major, top-left origin).
func LoadPNG(fsys fs.FS, name string) (w, h int, rgba []byte, err error) {
	p := path.Join("textures", name)
	f, err := fsys.Open(p)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %q: %w", p, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode png %q: %w", p, err)
	}
	m := ToRGBA(img)
	return m.Bounds().Dx(), m.Bounds().Dy(), Pack(m), nil
}

// LoadTexture loads a PNG and registers it in the arena as an RGBA8 texture.
func LoadTexture(cx *core.Cx, fsys fs.FS, name string) (core.TextureID, error) {
	w, h, px, err := LoadPNG(fsys, name)
	if err != nil {
		return 0, err
	}
	id := cx.CreateTexture(w, h, core.TextureRGBA8)
	cx.SetTexturePixels(id, px)
	return id, nil
}

// ToRGBA returns img as an *image.RGBA anchored at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// Pack copies m's pixels with the stride removed.
func Pack(m *image.RGBA) []byte {
	w, h := m.Bounds().Dx(), m.Bounds().Dy()
	if m.Stride == w*4 {
		return m.Pix[:w*h*4]
	}
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], m.Pix[y*m.Stride:y*m.Stride+w*4])
	}
	return out
}
