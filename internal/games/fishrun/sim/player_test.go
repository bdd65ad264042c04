package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/fishrun/internal/config"
	"github.com/vovakirdan/fishrun/internal/core"
)

func testPhysics() config.FishRunPhysics {
	return config.DefaultFishRunConfig().Physics
}

func testBounds() Bounds {
	return BoundsFor(config.DefaultFishRunConfig().World)
}

func TestPlayerRestsOnFloor(t *testing.T) {
	b := testBounds()
	p := Player{Box: core.NewAABB(-150, b.Bottom+24, 48, 48)}
	idle := core.NewInputFrame()

	for i := 0; i < 60; i++ {
		p.Update(1.0/60, idle, testPhysics(), b)
	}

	if p.Velocity.Y != 0 {
		t.Errorf("vy = %v, expected 0", p.Velocity.Y)
	}
	if p.Box.X != -150 {
		t.Errorf("x = %v, expected -150", p.Box.X)
	}
	if p.Box.Bottom() != b.Bottom {
		t.Errorf("bottom = %v, expected %v", p.Box.Bottom(), b.Bottom)
	}
}

func TestPlayerGravityAndJump(t *testing.T) {
	b := testBounds()
	phys := testPhysics()
	dt := 1.0 / 60

	p := Player{Box: core.NewAABB(0, 0, 48, 48)}
	p.Update(dt, core.NewInputFrame(), phys, b)
	if want := -phys.Gravity * dt; p.Velocity.Y != want {
		t.Errorf("after one airborne frame vy = %v, expected %v", p.Velocity.Y, want)
	}

	// Holding up re-triggers the impulse every frame
	for i := 0; i < 3; i++ {
		p.Update(dt, keys(core.KeyUp), phys, b)
		if want := phys.JumpImpulse * dt; p.Velocity.Y != want {
			t.Fatalf("frame %d: vy = %v, expected %v", i, p.Velocity.Y, want)
		}
	}
}

func TestPlayerJumpCut(t *testing.T) {
	b := testBounds()
	phys := testPhysics()
	dt := 1.0 / 60

	released := core.NewInputFrame()
	released.Release(core.KeyUp)

	p := Player{Box: core.NewAABB(0, 0, 48, 48)}
	p.Update(dt, keys(core.KeyUp), phys, b)
	p.Update(dt, released, phys, b)
	uncut := p.Velocity.Y

	phys.JumpCut = true
	q := Player{Box: core.NewAABB(0, 0, 48, 48)}
	q.Update(dt, keys(core.KeyUp), phys, b)
	q.Update(dt, released, phys, b)

	if want := uncut * phys.JumpCutFactor; q.Velocity.Y != want {
		t.Errorf("cut vy = %v, expected %v", q.Velocity.Y, want)
	}
}

func TestPlayerLeftNeedsPlatform(t *testing.T) {
	b := testBounds()
	dt := 0.1

	airborne := Player{Box: core.NewAABB(-100, 0, 48, 48)}
	airborne.Update(dt, keys(core.KeyLeft), testPhysics(), b)
	if airborne.Box.X != -100 {
		t.Errorf("airborne left moved x to %v", airborne.Box.X)
	}

	grounded := Player{Box: core.NewAABB(-100, 0, 48, 48), OnPlatform: true}
	grounded.Update(dt, keys(core.KeyLeft), testPhysics(), b)
	if grounded.Box.X != -120 {
		t.Errorf("grounded left x = %v, expected -120", grounded.Box.X)
	}
}

func TestPlayerRightScrollsPastOrigin(t *testing.T) {
	b := testBounds()
	p := Player{Box: core.NewAABB(-5, 0, 48, 48)}

	scroll := p.Update(0.1, keys(core.KeyRight), testPhysics(), b)

	if p.Box.X != 0 {
		t.Errorf("x = %v, expected 0", p.Box.X)
	}
	if scroll != 15 {
		t.Errorf("scroll = %v, expected 15", scroll)
	}
	if p.Distance != 15 {
		t.Errorf("distance = %v, expected 15", p.Distance)
	}
	if !p.MovingRight {
		t.Error("MovingRight should be set")
	}

	p.Update(0.1, core.NewInputFrame(), testPhysics(), b)
	if p.MovingRight {
		t.Error("MovingRight should clear without the key")
	}
}

func TestPlayerClampHoldsForAnyInput(t *testing.T) {
	b := testBounds()
	rng := rand.New(rand.NewSource(11))
	p := Player{Box: core.NewAABB(-150, 120, 48, 48)}
	all := []core.Key{core.KeyUp, core.KeyLeft, core.KeyRight}

	for i := 0; i < 5000; i++ {
		in := core.NewInputFrame()
		for _, k := range all {
			if rng.Intn(2) == 0 {
				in.Press(k)
			}
		}
		p.OnPlatform = rng.Intn(2) == 0
		p.Update(rng.Float64()*0.1, in, testPhysics(), b)

		if p.Box.X > 0 || p.Box.X < b.Left+p.Box.W/2 {
			t.Fatalf("frame %d: x = %v outside [%v, 0]", i, p.Box.X, b.Left+p.Box.W/2)
		}
	}
}
