//go:build profile

package profiler

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"
)

// Enabled reports whether scope tracing is compiled in.
const Enabled = true

var ErrNoScopes = errors.New("profiler: no scopes recorded")

// span is one closed scope, in nanoseconds since the capture began.
type span struct {
	scope      Scope
	start, end int64
	depth      int
}

// capture holds the closed spans of the most recent frames. The frame loop
// runs on one locked thread, so a mutex is enough.
type capture struct {
	mu     sync.Mutex
	on     bool
	origin time.Time
	depth  int
	limit  int
	spans  []span
}

var rec capture

// Init turns tracing on. limit is the number of spans kept; once it is
// reached the oldest half is dropped.
func Init(limit int) {
	if limit <= 0 {
		limit = 1 << 16
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.on = true
	rec.origin = time.Now()
	rec.depth = 0
	rec.limit = limit
	rec.spans = make([]span, 0, limit)
}

// Start opens s and returns the func that closes it.
//
//	defer profiler.Start(profiler.ScopeViewDraw)()
func Start(s Scope) func() {
	rec.mu.Lock()
	if !rec.on {
		rec.mu.Unlock()
		return func() {}
	}
	depth := rec.depth
	rec.depth++
	start := time.Since(rec.origin).Nanoseconds()
	rec.mu.Unlock()

	return func() {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.depth--
		end := max(time.Since(rec.origin).Nanoseconds(), start)
		rec.add(span{scope: s, start: start, end: end, depth: depth})
	}
}

func (c *capture) add(sp span) {
	if len(c.spans) == c.limit {
		n := copy(c.spans, c.spans[c.limit/2:])
		c.spans = c.spans[:n]
	}
	c.spans = append(c.spans, sp)
}

func (c *capture) snapshot() []span {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]span(nil), c.spans...)
}

// Dump writes the captured spans as a speedscope evented profile.
func Dump(path string) error {
	spans := rec.snapshot()
	if len(spans) == 0 {
		return ErrNoScopes
	}
	return writeSpeedscope(spans, path)
}

// Open dumps to the temp dir and launches the speedscope viewer on it.
func Open() (string, error) {
	path := filepath.Join(os.TempDir(), "mix.profile.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}
	if err := exec.Command("speedscope", path).Start(); err != nil {
		return path, fmt.Errorf("profiler: launch speedscope: %w", err)
	}
	return path, nil
}
