package core

import "github.com/incredimo/mix/engine/geom"

type TextureFormat uint8

const (
	TextureRGBA8 TextureFormat = iota
	TextureBGRA8
	TextureRGB8
	TextureBGR8
	TextureR8
	TextureDepth32
)

// BytesPerPixel is 0 for unknown formats.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case TextureRGBA8, TextureBGRA8, TextureDepth32:
		return 4
	case TextureRGB8, TextureBGR8:
		return 3
	case TextureR8:
		return 1
	}
	return 0
}

// Texture describes an image resource. Pixels is optional, tightly packed,
// row-major with a top-left origin.
type Texture struct {
	ID     TextureID
	Width  int
	Height int
	Format TextureFormat
	Pixels []byte
}

func (t *Texture) Size() geom.Vec2 { return geom.V2(float32(t.Width), float32(t.Height)) }
