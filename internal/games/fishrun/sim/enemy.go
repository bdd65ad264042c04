package sim

import (
	"github.com/vovakirdan/fishrun/internal/assets"
	"github.com/vovakirdan/fishrun/internal/config"
	"github.com/vovakirdan/fishrun/internal/core"
)

// Enemy flies leftwards at its species speed. Contact costs the player a life.
type Enemy struct {
	Box      core.AABB
	Species  config.EnemySpecies
	Sprite   assets.Handle
	AnimTime float64
}

// Update moves the enemy left by speed * dt.
func (e *Enemy) Update(dt, speed float64) {
	e.AnimTime += dt
	e.Box.X -= speed * dt
}

// OffScreen reports whether the enemy has fully left through the left edge.
func (e *Enemy) OffScreen(b Bounds) bool {
	return e.Box.Right() < b.Left
}
