package renderer2d

import (
	"encoding/binary"
	"math"

	"github.com/incredimo/mix/engine/core"
)

// EncodeFloat32s appends v to dst as little-endian IEEE-754 values.
func EncodeFloat32s(dst []byte, v ...float32) []byte {
	for _, f := range v {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// EncodeUint16s appends v to dst little-endian.
func EncodeUint16s(dst []byte, v ...uint16) []byte {
	for _, u := range v {
		dst = binary.LittleEndian.AppendUint16(dst, u)
	}
	return dst
}

// EncodeUniforms packs uniform values back to back in declaration order.
func EncodeUniforms(dst []byte, us []core.DrawUniform) []byte {
	for _, u := range us {
		dst = EncodeFloat32s(dst, u.Floats()...)
	}
	return dst
}

// DecodeFloat32s reads little-endian floats; a trailing partial value is dropped.
func DecodeFloat32s(b []byte) []float32 {
	out := make([]float32, 0, len(b)/4)
	for ; len(b) >= 4; b = b[4:] {
		out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}
	return out
}
