package profiler

import "time"

const fpsWindow = 60

// FrameStats tracks frame timing over a rolling window of recent frames.
type FrameStats struct {
	FrameCount uint64
	FrameTime  time.Duration // duration of the last frame
	FPS        float32       // averaged over the last fpsWindow frames

	last    time.Time
	samples [fpsWindow]time.Duration
	n       int
	next    int
	sum     time.Duration
}

func (s *FrameStats) UpdateNow() { s.Update(time.Now()) }

// Update records a frame ending at now. The first call only anchors the clock.
func (s *FrameStats) Update(now time.Time) {
	s.FrameCount++
	if s.last.IsZero() {
		s.last = now
		return
	}
	dt := now.Sub(s.last)
	s.last = now
	s.FrameTime = dt

	if s.n == fpsWindow {
		s.sum -= s.samples[s.next]
	} else {
		s.n++
	}
	s.samples[s.next] = dt
	s.sum += dt
	s.next = (s.next + 1) % fpsWindow

	if s.sum > 0 {
		s.FPS = float32(float64(s.n) / s.sum.Seconds())
	}
}
