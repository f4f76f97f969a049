package core

import "strconv"

// Resource ids are opaque handles minted by the arena. Zero means "none";
// ids are never reused for the lifetime of the arena that minted them.
type (
	WindowID   uint64
	PassID     uint64
	DrawListID uint64
	TextureID  uint64
	GeometryID uint64
	ShaderID   uint64
	AreaID     uint64
)

func (id WindowID) IsEmpty() bool   { return id == 0 }
func (id PassID) IsEmpty() bool     { return id == 0 }
func (id DrawListID) IsEmpty() bool { return id == 0 }
func (id TextureID) IsEmpty() bool  { return id == 0 }
func (id GeometryID) IsEmpty() bool { return id == 0 }
func (id ShaderID) IsEmpty() bool   { return id == 0 }
func (id AreaID) IsEmpty() bool     { return id == 0 }

func (id WindowID) String() string   { return "window#" + strconv.FormatUint(uint64(id), 10) }
func (id PassID) String() string     { return "pass#" + strconv.FormatUint(uint64(id), 10) }
func (id DrawListID) String() string { return "drawlist#" + strconv.FormatUint(uint64(id), 10) }
func (id TextureID) String() string  { return "texture#" + strconv.FormatUint(uint64(id), 10) }
func (id GeometryID) String() string { return "geometry#" + strconv.FormatUint(uint64(id), 10) }
func (id ShaderID) String() string   { return "shader#" + strconv.FormatUint(uint64(id), 10) }
func (id AreaID) String() string     { return "area#" + strconv.FormatUint(uint64(id), 10) }

type resourceID interface {
	~uint64
}

// idSeq hands out 1, 2, 3, ... for one id kind.
type idSeq[T resourceID] struct{ last T }

func (s *idSeq[T]) next() T {
	s.last++
	return s.last
}

// observe makes sure the sequence never hands out an id at or below v.
func (s *idSeq[T]) observe(v T) {
	if v > s.last {
		s.last = v
	}
}
