package core

import "github.com/incredimo/mix/engine/colors"

type PassParentKind uint8

const (
	PassParentNone PassParentKind = iota
	PassParentWindow
	PassParentPass
)

// PassParent says what a pass renders into.
type PassParent struct {
	Kind   PassParentKind
	Window WindowID
	Pass   PassID
}

const defaultZBiasStep = 0.001

// Pass ties a main draw list to a window or to another pass.
type Pass struct {
	ID           PassID
	Parent       PassParent
	MainDrawList DrawListID
	ClearColor   *colors.Color
	ClearDepth   *float32
	ColorTexture TextureID
	DepthTexture TextureID
	DPIFactor    float32 // 0 when unset
	ZBiasStep    float32
}

func newPass(id PassID) *Pass {
	return &Pass{ID: id, ZBiasStep: defaultZBiasStep}
}

func (p *Pass) SetWindowParent(w WindowID) { p.Parent = PassParent{Kind: PassParentWindow, Window: w} }
func (p *Pass) SetPassParent(parent PassID) {
	p.Parent = PassParent{Kind: PassParentPass, Pass: parent}
}
func (p *Pass) SetMainDrawList(dl DrawListID) { p.MainDrawList = dl }
func (p *Pass) SetClearColor(c colors.Color)  { p.ClearColor = &c }
func (p *Pass) SetClearDepth(d float32)       { p.ClearDepth = &d }
func (p *Pass) SetColorTexture(t TextureID)   { p.ColorTexture = t }
func (p *Pass) SetDepthTexture(t TextureID)   { p.DepthTexture = t }
func (p *Pass) SetDPIFactor(f float32)        { p.DPIFactor = f }
