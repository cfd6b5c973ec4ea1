package runner

// Rect is an axis-aligned box in logical units, Y growing downwards.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports strict overlap on both axes. Boxes that only share an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// CollisionHeight is the player's height for collision and sprite placement.
func CollisionHeight(body Body, crouching bool, t Tuning) float64 {
	if crouching {
		return body.H * t.CrouchRatio
	}
	return body.H
}

// Hitbox is the player's collision box: the visual box scaled by
// HitboxScale around its horizontal centre, shifted left by HitboxOffsetX,
// and grown upwards from the feet.
func Hitbox(pos Position, body Body, crouching bool, t Tuning) Rect {
	dh := CollisionHeight(body, crouching, t)
	grow := t.HitboxScale - 1
	return Rect{
		X: pos.X - body.W*grow/2 - t.HitboxOffsetX,
		Y: pos.Y + (body.H - dh) - dh*grow,
		W: body.W * t.HitboxScale,
		H: dh * t.HitboxScale,
	}
}
