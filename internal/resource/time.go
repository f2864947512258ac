package resource

// maxDelta clamps the per-frame delta so a stalled frame does not cause
// runaway catch-up.
const maxDelta = 0.1

// TimeInfo tracks frame timing. Timestamps are milliseconds, deltas
// seconds.
type TimeInfo struct {
	Total     float64 // seconds since start
	Delta     float64 // seconds since last frame, clamped
	Frames    uint64
	TargetFPS int
	LastFrame float64 // ms timestamp of the previous frame
}

// Update advances the clock to the given millisecond timestamp.
func (t *TimeInfo) Update(nowMS float64) {
	if t.LastFrame > 0 {
		t.Delta = (nowMS - t.LastFrame) / 1000
	} else {
		t.Delta = 1 / float64(t.TargetFPS)
	}
	if t.Delta > maxDelta {
		t.Delta = maxDelta
	}
	t.Total += t.Delta
	t.LastFrame = nowMS
	t.Frames++
}

// FPS returns the instantaneous frame rate.
func (t *TimeInfo) FPS() float64 {
	if t.Delta <= 0 {
		return 0
	}
	return 1 / t.Delta
}
