package core

type VertexFormat uint8

const (
	VertexFloat1 VertexFormat = iota
	VertexFloat2
	VertexFloat3
	VertexFloat4
	VertexByte4
	VertexUByte4
	VertexShort2
	VertexUShort2
	VertexShort4
	VertexUShort4
)

// Size is the attribute's size in bytes.
func (f VertexFormat) Size() int {
	switch f {
	case VertexFloat1:
		return 4
	case VertexFloat2:
		return 8
	case VertexFloat3:
		return 12
	case VertexFloat4:
		return 16
	case VertexByte4, VertexUByte4, VertexShort2, VertexUShort2:
		return 4
	case VertexShort4, VertexUShort4:
		return 8
	}
	return 0
}

type VertexAttribute struct {
	Name   string
	Offset int
	Format VertexFormat
}

// Geometry holds little-endian vertex bytes and 16-bit indices.
type Geometry struct {
	ID         GeometryID
	Vertices   []byte
	Indices    []uint16
	Attributes []VertexAttribute
}

// Stride is the byte size of one vertex: the end of the furthest attribute.
func (g *Geometry) Stride() int {
	stride := 0
	for _, a := range g.Attributes {
		if end := a.Offset + a.Format.Size(); end > stride {
			stride = end
		}
	}
	return stride
}
