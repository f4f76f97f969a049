package profiler

// Scope names a traced section of the frame loop. The set is fixed so a
// capture always carries the same frame table.
type Scope uint8

const (
	ScopeFrame Scope = iota
	ScopeDispatch
	ScopeRender
	ScopeAppDraw
	ScopeViewDraw
	ScopeLabelDraw
	ScopeButtonDraw
	ScopeWindowDraw
	ScopePresent

	numScopes
)

var scopeNames = [numScopes]string{
	ScopeFrame:      "core.Run/frame",
	ScopeDispatch:   "core.Run/dispatch",
	ScopeRender:     "core.Render",
	ScopeAppDraw:    "ui.App.Draw",
	ScopeViewDraw:   "ui.View.Draw",
	ScopeLabelDraw:  "ui.Label.Draw",
	ScopeButtonDraw: "ui.Button.Draw",
	ScopeWindowDraw: "ui.Window.Draw",
	ScopePresent:    "gl.Present",
}

func (s Scope) String() string {
	if s < numScopes {
		return scopeNames[s]
	}
	return "unknown"
}
