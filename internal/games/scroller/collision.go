package scroller

// Collision describes which zone hit which obstacle.
type Collision struct {
	Hitbox   Hitbox
	Obstacle Obstacle
}

// FindCollision tests the hitboxes matching the player's orientation
// against every obstacle and returns the first hit.
func FindCollision(p *Player, obstacles []Obstacle) (Collision, bool) {
	for _, hb := range p.Hitboxes {
		if hb.Orientation != p.Orientation {
			continue
		}
		for _, o := range obstacles {
			if hb.Rect.Intersects(o.Rect()) {
				return Collision{Hitbox: hb, Obstacle: o}, true
			}
		}
	}
	return Collision{}, false
}

// IsColliding reports whether any active hitbox overlaps an obstacle.
func IsColliding(p *Player, obstacles []Obstacle) bool {
	_, hit := FindCollision(p, obstacles)
	return hit
}
