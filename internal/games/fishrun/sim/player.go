package sim

import (
	"github.com/vovakirdan/fishrun/internal/assets"
	"github.com/vovakirdan/fishrun/internal/config"
	"github.com/vovakirdan/fishrun/internal/core"
)

// Bounds is the visible world rectangle in world units.
type Bounds struct {
	Left, Right, Bottom, Top float64
}

// BoundsFor derives screen-centered bounds from the world config.
func BoundsFor(w config.FishRunWorld) Bounds {
	return Bounds{
		Left:   -w.ScreenWidth / 2,
		Right:  w.ScreenWidth / 2,
		Bottom: -w.ScreenHeight / 2,
		Top:    w.ScreenHeight / 2,
	}
}

// Box returns the bounds as an AABB.
func (b Bounds) Box() core.AABB {
	return core.NewAABB((b.Left+b.Right)/2, (b.Bottom+b.Top)/2, b.Right-b.Left, b.Top-b.Bottom)
}

// Player is the runner. The player stays pinned near x = 0 while the world
// scrolls past.
type Player struct {
	Box         core.AABB
	Velocity    core.Vec // Per-frame displacement, applied before it is recomputed
	OnPlatform  bool
	MovingRight bool
	Distance    float64 // Horizontal distance scrolled so far
	AnimTime    float64
	Frames      []assets.Handle
}

// Update advances the player by one frame and returns the distance the
// world must scroll because the player pushed past the right clamp.
func (p *Player) Update(dt float64, in core.Input, phys config.FishRunPhysics, b Bounds) float64 {
	p.AnimTime += dt

	// Semi-implicit: last frame's velocity moves us first
	p.Box.X += p.Velocity.X
	p.Box.Y += p.Velocity.Y

	if p.Box.Y+p.Velocity.Y-p.Box.H/2 > b.Bottom {
		p.Velocity.Y -= phys.Gravity * dt
	} else {
		p.Velocity.Y = 0
	}

	if in.IsKeyDown(core.KeyUp) {
		p.Velocity.Y = phys.JumpImpulse * dt
	} else if phys.JumpCut && in.KeyReleased(core.KeyUp) && p.Velocity.Y > 0 {
		p.Velocity.Y *= phys.JumpCutFactor
	}

	p.MovingRight = in.IsKeyDown(core.KeyRight)
	if p.MovingRight {
		p.Box.X += phys.MoveSpeed * dt
	}
	// No air control to the left
	if in.IsKeyDown(core.KeyLeft) && p.OnPlatform {
		p.Box.X -= phys.MoveSpeed * dt
	}

	var scroll float64
	if p.Box.X > 0 {
		scroll = p.Box.X
		p.Box.X = 0
	}
	if minX := b.Left + p.Box.W/2; p.Box.X < minX {
		p.Box.X = minX
	}
	p.Distance += scroll
	return scroll
}
