package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	a := CenteredRect(100, 100, 20, 20, 0)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same box", CenteredRect(100, 100, 20, 20, 0), true},
		{"partial overlap", CenteredRect(115, 100, 20, 20, 0), true},
		{"touching edges", CenteredRect(120, 100, 20, 20, 0), false},
		{"padding closes gap", CenteredRect(125, 100, 20, 20, 8), true},
		{"far away", CenteredRect(300, 300, 20, 20, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 7.0, Clamp(7, 0, 10))
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
}

func TestTurnTowardCapsStep(t *testing.T) {
	got := TurnToward(0, math.Pi/2, 0.1)
	assert.InDelta(t, 0.1, got, 1e-9)

	got = TurnToward(0, 0.05, 0.1)
	assert.InDelta(t, 0.05, got, 1e-9)

	// Shortest way round crosses the ±π seam.
	got = TurnToward(math.Pi-0.05, -math.Pi+0.05, 0.2)
	assert.InDelta(t, -math.Pi+0.05, got, 1e-9)
}

func TestPointInCircle(t *testing.T) {
	assert.True(t, PointInCircle(3, 4, 0, 0, 5))
	assert.False(t, PointInCircle(3, 4.1, 0, 0, 5))
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
}
