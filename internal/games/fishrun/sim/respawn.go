package sim

import (
	"math/rand"

	"github.com/vovakirdan/fishrun/internal/config"
	"github.com/vovakirdan/fishrun/internal/core"
)

// Band is a rectangular region that candidate centers are sampled from.
// Max bounds are exclusive.
type Band struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Sample draws x, then y, uniformly from the band.
func (b Band) Sample(rng *rand.Rand) core.Vec {
	x := b.MinX + rng.Float64()*(b.MaxX-b.MinX)
	y := b.MinY + rng.Float64()*(b.MaxY-b.MinY)
	return core.Vec{X: x, Y: y}
}

// respawnBand lies fully right of the screen, one screen width wide.
func respawnBand(b Bounds, marginY float64) Band {
	return Band{
		MinX: b.Right,
		MaxX: b.Right + (b.Right - b.Left),
		MinY: b.Bottom + marginY,
		MaxY: b.Top - marginY,
	}
}

// enemyBand covers the right half of the screen, starting clearX right of
// the center so a new enemy never appears on the player.
func enemyBand(b Bounds, marginY, clearX float64) Band {
	return Band{
		MinX: min(clearX, b.Right),
		MaxX: b.Right,
		MinY: b.Bottom + marginY,
		MaxY: b.Top - marginY,
	}
}

// enemyClearance is the spawn offset from the screen center for an enemy of
// width w. The player never passes x = 0, so its right edge stays at or left
// of its half-width. One more player width of slack is added.
func enemyClearance(player Player, w float64) float64 {
	return player.Box.W/2 + player.Box.W + w/2
}

// drawKind picks a platform variant with probability proportional to its weight.
func drawKind(rng *rand.Rand, w config.KindWeights) KindTag {
	total := w.Total()
	if total <= 0 {
		return TagPlain
	}
	n := rng.Intn(total)
	switch {
	case n < w.Fish:
		return TagFish
	case n < w.Fish+w.Enemy:
		return TagEnemy
	default:
		return TagPlain
	}
}

// overlapsOthers reports whether box shares any horizontal span with a
// platform other than platforms[self].
func overlapsOthers(box core.AABB, platforms []Platform, self int) bool {
	for j := range platforms {
		if j != self && core.OverlapsHorizontally(box, platforms[j].Box) {
			return true
		}
	}
	return false
}

// placePlatform samples a new position for platforms[self] by rejection.
// After maxAttempts failures it returns the last candidate and false.
func placePlatform(rng *rand.Rand, platforms []Platform, self int, band Band, maxAttempts int) (core.AABB, bool) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	candidate := platforms[self].Box
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate = candidate.MoveTo(band.Sample(rng))
		if !overlapsOthers(candidate, platforms, self) {
			return candidate, true
		}
	}
	return candidate, false
}
