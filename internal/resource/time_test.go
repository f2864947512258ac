package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeFirstFrameUsesTargetRate(t *testing.T) {
	ti := TimeInfo{TargetFPS: 60}
	ti.Update(1000)
	assert.InDelta(t, 1.0/60, ti.Delta, 1e-9)
	assert.Equal(t, uint64(1), ti.Frames)
}

func TestTimeDeltaFromTimestamps(t *testing.T) {
	ti := TimeInfo{TargetFPS: 60}
	ti.Update(1000)
	ti.Update(1016)
	assert.InDelta(t, 0.016, ti.Delta, 1e-9)
	assert.Equal(t, uint64(2), ti.Frames)
	assert.InDelta(t, 62.5, ti.FPS(), 0.1)
}

func TestTimeDeltaClamped(t *testing.T) {
	ti := TimeInfo{TargetFPS: 60}
	ti.Update(1000)
	// A five second stall must not produce a five second step.
	ti.Update(6000)
	assert.Equal(t, 0.1, ti.Delta)
}

func TestTimeTotalAccumulates(t *testing.T) {
	ti := TimeInfo{TargetFPS: 60}
	ti.Update(0)
	total := ti.Total
	ti.Update(16)
	assert.Greater(t, ti.Total, total)
}
