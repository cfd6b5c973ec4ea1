package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"touching corner", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"overlap on x only", Rect{X: 5, Y: 20, W: 10, H: 10}, false},
		{"overlap on y only", Rect{X: 20, Y: 5, W: 10, H: 10}, false},
		{"left of", Rect{X: -11, Y: 0, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "symmetric")
		})
	}
}

func TestHitbox(t *testing.T) {
	tuning := DefaultTuning()
	pos := Position{X: PlayerX, Y: GroundY - PlayerH}
	body := Body{W: PlayerW, H: PlayerH}

	t.Run("standing", func(t *testing.T) {
		box := Hitbox(pos, body, false, tuning)
		assert.InDelta(t, 31.6, box.X, 1e-9)
		assert.InDelta(t, 92.8, box.Y, 1e-9)
		assert.InDelta(t, 44.8, box.W, 1e-9)
		assert.InDelta(t, 67.2, box.H, 1e-9)
		assert.InDelta(t, float64(GroundY), box.Bottom(), 1e-9)
	})

	t.Run("crouching is shorter but keeps its feet", func(t *testing.T) {
		standing := Hitbox(pos, body, false, tuning)
		box := Hitbox(pos, body, true, tuning)
		assert.Equal(t, standing.X, box.X)
		assert.Equal(t, standing.W, box.W)
		assert.InDelta(t, 36.96, box.H, 1e-9)
		assert.InDelta(t, float64(GroundY), box.Bottom(), 1e-9)
		assert.Greater(t, box.Y, float64(GroundY-ElevatedLift), "clears elevated obstacles")
	})
}
