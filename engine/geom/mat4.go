package geom

import "github.com/chewxy/math32"

// Mat4 is a column-major 4x4 matrix (GLSL layout).
type Mat4 [16]float32

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func RotateZ(a float32) Mat4 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Ortho(l, r, b, t, n, f float32) Mat4 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// PixelOrtho maps pixel coordinates with a top-left origin (Y down) to clip space.
func PixelOrtho(width, height float32) Mat4 {
	if width <= 0 || height <= 0 {
		return Identity()
	}
	return Ortho(0, width, height, 0, -1, 1)
}

// Mul returns a*b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i+4*j] = a[i+0]*b[0+4*j] + a[i+4]*b[1+4*j] + a[i+8]*b[2+4*j] + a[i+12]*b[3+4*j]
		}
	}
	return out
}

// TransformPoint applies m to (p.X, p.Y, 0, 1) and drops z/w.
func (m Mat4) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[4]*p.Y + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[13],
	}
}
