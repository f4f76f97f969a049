//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsNestChildrenInsideParents(t *testing.T) {
	// closing order: two views, then the app draw that contains them
	spans := []span{
		{scope: ScopeViewDraw, start: 2000, end: 3000, depth: 1},
		{scope: ScopeViewDraw, start: 4000, end: 6000, depth: 1},
		{scope: ScopeAppDraw, start: 1000, end: 8000, depth: 0},
	}
	evs, end := events(spans)
	assert.Equal(t, int64(7), end)
	assert.Equal(t, []ssEvent{
		{Type: "O", At: 0, Frame: int(ScopeAppDraw)},
		{Type: "O", At: 1, Frame: int(ScopeViewDraw)},
		{Type: "C", At: 2, Frame: int(ScopeViewDraw)},
		{Type: "O", At: 3, Frame: int(ScopeViewDraw)},
		{Type: "C", At: 5, Frame: int(ScopeViewDraw)},
		{Type: "C", At: 7, Frame: int(ScopeAppDraw)},
	}, evs)
}

func TestDumpWritesEveryScopeName(t *testing.T) {
	Init(8)
	end := Start(ScopeFrame)
	Start(ScopeLabelDraw)()
	end()

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Dump(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Len(t, doc.Shared.Frames, int(numScopes))
	assert.Equal(t, "ui.Label.Draw", doc.Shared.Frames[ScopeLabelDraw].Name)
	require.Len(t, doc.Profiles, 1)
	assert.Len(t, doc.Profiles[0].Events, 4)
}

func TestCaptureDropsOldestHalf(t *testing.T) {
	Init(4)
	for range 5 {
		Start(ScopeDispatch)()
	}
	assert.Len(t, rec.snapshot(), 3)
}
