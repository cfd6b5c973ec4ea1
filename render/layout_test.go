package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		available int
		maxScale  float64
		w, h      int
	}{
		{1000, 1, 900, 200},
		{3000, 2, 1800, 400},
		{3000, 0, 900, 200},
		{500, 1, 460, 102},
		{100, 1, 225, 50},
	}
	for _, tt := range tests {
		w, h := WindowSize(tt.available, tt.maxScale)
		assert.Equal(t, tt.w, w, "available=%d scale=%v", tt.available, tt.maxScale)
		assert.Equal(t, tt.h, h, "available=%d scale=%v", tt.available, tt.maxScale)
	}
}

func TestHitPlayButton(t *testing.T) {
	b := PlayButton
	assert.True(t, HitPlayButton(b.X, b.Y))
	assert.True(t, HitPlayButton(b.X+b.W/2, b.Y+b.H/2))
	assert.False(t, HitPlayButton(b.Right(), b.Y))
	assert.False(t, HitPlayButton(b.X-1, b.Y))
	assert.False(t, HitPlayButton(0, 0))
}

func TestFitViewport(t *testing.T) {
	v := FitViewport(1800, 600)
	assert.Equal(t, 2.0, v.Scale)
	assert.Equal(t, 0.0, v.OffsetX)
	assert.Equal(t, 100.0, v.OffsetY)

	x, y := v.ToLogical(900, 300)
	assert.Equal(t, 450.0, x)
	assert.Equal(t, 100.0, y)
	assert.True(t, v.Contains(900, 300))
	assert.False(t, v.Contains(900, 50), "letterbox band")

	v = FitViewport(450, 400)
	assert.Equal(t, 0.5, v.Scale)
	assert.Equal(t, 150.0, v.OffsetY)

	assert.Equal(t, Viewport{Scale: 1}, FitViewport(0, 0))
}
