package sim

import (
	"math"

	"github.com/vovakirdan/fishrun/internal/core"
)

// LandingMode selects how the player settles on platforms.
type LandingMode int

const (
	// LandingReference zeroes vertical speed on landing and treats any
	// horizontal overlap with a platform as standing on it.
	LandingReference LandingMode = iota
	// LandingStrict also snaps the player onto the surface and only counts
	// as standing when the feet are within tolerance of a platform top.
	LandingStrict
)

func (m LandingMode) String() string {
	if m == LandingStrict {
		return "strict"
	}
	return "reference"
}

// IsLanding reports whether a player falling with vertical displacement vy
// crosses the top surface of platform this frame. Touching edges count.
func IsLanding(player core.AABB, vy float64, platform core.AABB) bool {
	return core.OverlapsHorizontally(player, platform) &&
		player.Bottom()+vy <= platform.Top() &&
		player.Bottom() >= platform.Top()
}

// StandsOn reports whether the player's feet rest on platform's top
// surface within tol.
func StandsOn(player, platform core.AABB, tol float64) bool {
	return core.OverlapsHorizontally(player, platform) &&
		math.Abs(player.Bottom()-platform.Top()) <= tol
}

// resolveLanding applies platform contact to the player.
func resolveLanding(p *Player, platforms []Platform, mode LandingMode, tol float64) {
	if mode == LandingStrict {
		landed := false
		top := math.Inf(-1)
		for i := range platforms {
			if IsLanding(p.Box, p.Velocity.Y, platforms[i].Box) {
				landed = true
				top = math.Max(top, platforms[i].Box.Top())
			}
		}
		if landed {
			p.Velocity.Y = 0
			p.Box.Y = top + p.Box.H/2
		}
		p.OnPlatform = false
		for i := range platforms {
			if StandsOn(p.Box, platforms[i].Box, tol) {
				p.OnPlatform = true
				break
			}
		}
		return
	}

	for i := range platforms {
		if IsLanding(p.Box, p.Velocity.Y, platforms[i].Box) {
			p.Velocity.Y = 0
		}
	}
	p.OnPlatform = false
	for i := range platforms {
		if core.OverlapsHorizontally(p.Box, platforms[i].Box) {
			p.OnPlatform = true
			break
		}
	}
}
