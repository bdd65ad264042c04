package sim

import (
	"testing"

	"github.com/vovakirdan/fishrun/internal/core"
)

func TestIsLanding(t *testing.T) {
	platform := core.NewAABB(0, 0, 100, 20) // top at 10

	tests := []struct {
		name     string
		player   core.AABB
		vy       float64
		expected bool
	}{
		{"crossing the surface", core.NewAABB(0, 12+24, 48, 48), -5, true},
		{"resting exactly on top", core.NewAABB(0, 10+24, 48, 48), -0.05, true},
		{"lands exactly on top", core.NewAABB(0, 15+24, 48, 48), -5, true},
		{"falling but stays above", core.NewAABB(0, 30+24, 48, 48), -5, false},
		{"already below the surface", core.NewAABB(0, 5+24, 48, 48), -5, false},
		{"rising through", core.NewAABB(0, 10+24, 48, 48), 5, false},
		{"no horizontal overlap", core.NewAABB(200, 12+24, 48, 48), -5, false},
		{"edge touching is not overlap", core.NewAABB(74, 12+24, 48, 48), -5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLanding(tc.player, tc.vy, platform); got != tc.expected {
				t.Errorf("IsLanding() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestStandsOn(t *testing.T) {
	platform := core.NewAABB(0, 0, 100, 20)

	tests := []struct {
		name     string
		player   core.AABB
		expected bool
	}{
		{"flush", core.NewAABB(0, 34, 48, 48), true},
		{"within tolerance", core.NewAABB(0, 34.5, 48, 48), true},
		{"hovering", core.NewAABB(0, 40, 48, 48), false},
		{"far below", core.NewAABB(0, -200, 48, 48), false},
		{"beside", core.NewAABB(300, 34, 48, 48), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StandsOn(tc.player, platform, 1.0); got != tc.expected {
				t.Errorf("StandsOn() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestResolveLandingModes(t *testing.T) {
	platforms := []Platform{{Box: core.NewAABB(0, 0, 100, 20)}}

	t.Run("reference zeroes vy without snapping", func(t *testing.T) {
		p := Player{Box: core.NewAABB(0, 11+24, 48, 48), Velocity: core.Vec{Y: -3}}
		resolveLanding(&p, platforms, LandingReference, 1.0)
		if p.Velocity.Y != 0 {
			t.Errorf("vy = %v, expected 0", p.Velocity.Y)
		}
		if p.Box.Bottom() != 11 {
			t.Errorf("bottom = %v, expected unchanged 11", p.Box.Bottom())
		}
		if !p.OnPlatform {
			t.Error("expected on platform")
		}
	})

	t.Run("strict snaps onto the surface", func(t *testing.T) {
		p := Player{Box: core.NewAABB(0, 11+24, 48, 48), Velocity: core.Vec{Y: -3}}
		resolveLanding(&p, platforms, LandingStrict, 1.0)
		if p.Velocity.Y != 0 {
			t.Errorf("vy = %v, expected 0", p.Velocity.Y)
		}
		if p.Box.Bottom() != 10 {
			t.Errorf("bottom = %v, expected 10", p.Box.Bottom())
		}
		if !p.OnPlatform {
			t.Error("expected on platform")
		}
	})

	t.Run("reference counts any horizontal overlap as standing", func(t *testing.T) {
		p := Player{Box: core.NewAABB(0, 250, 48, 48)}
		resolveLanding(&p, platforms, LandingReference, 1.0)
		if !p.OnPlatform {
			t.Error("reference mode should report on platform while high above it")
		}

		resolveLanding(&p, platforms, LandingStrict, 1.0)
		if p.OnPlatform {
			t.Error("strict mode should not report on platform while high above it")
		}
	})
}
