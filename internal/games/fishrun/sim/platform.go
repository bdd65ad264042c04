package sim

import (
	"github.com/vovakirdan/fishrun/internal/assets"
	"github.com/vovakirdan/fishrun/internal/core"
)

// SizeClass selects one of the fixed platform sizes.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ParseSizeClass maps a config name to a SizeClass.
func ParseSizeClass(name string) (SizeClass, bool) {
	switch name {
	case "small":
		return SizeSmall, true
	case "medium":
		return SizeMedium, true
	case "large":
		return SizeLarge, true
	}
	return SizeSmall, false
}

// KindTag names a platform variant.
type KindTag int

const (
	TagPlain KindTag = iota
	TagFish
	TagEnemy
)

func (t KindTag) String() string {
	switch t {
	case TagFish:
		return "fish"
	case TagEnemy:
		return "enemy"
	default:
		return "plain"
	}
}

// ParseKindTag maps a config name to a KindTag.
func ParseKindTag(name string) (KindTag, bool) {
	switch name {
	case "plain":
		return TagPlain, true
	case "fish":
		return TagFish, true
	case "enemy":
		return TagEnemy, true
	}
	return TagPlain, false
}

// PlatformKind is the variant state of a platform. Exactly one of
// PlainKind, *FishKind or EnemyKind; only FishKind owns collectibles.
type PlatformKind interface {
	Tag() KindTag
	isPlatformKind()
}

// PlainKind is an empty platform.
type PlainKind struct{}

// FishKind is a platform carrying collectibles.
type FishKind struct {
	Fish []Collectible
}

// EnemyKind is a platform drawn as enemy territory.
type EnemyKind struct{}

func (PlainKind) Tag() KindTag    { return TagPlain }
func (*FishKind) Tag() KindTag    { return TagFish }
func (EnemyKind) Tag() KindTag    { return TagEnemy }
func (PlainKind) isPlatformKind() {}
func (*FishKind) isPlatformKind() {}
func (EnemyKind) isPlatformKind() {}

// Collectible is a fish sitting on a platform. Its position is stored
// relative to the platform center so it moves with the platform.
type Collectible struct {
	Offset core.Vec
	Size   float64
	Taken  bool
}

// Box returns the collectible's world-space box for a platform box.
func (c Collectible) Box(platform core.AABB) core.AABB {
	center := platform.Center().Add(c.Offset)
	return core.NewAABB(center.X, center.Y, c.Size, c.Size)
}

// newFishKind allocates n untaken collectibles spread evenly above the
// platform's top surface.
func newFishKind(platform core.AABB, n int, size, lift float64) *FishKind {
	fish := make([]Collectible, n)
	for i := range fish {
		fish[i] = Collectible{
			Offset: core.Vec{
				X: -platform.W/2 + float64(i+1)*platform.W/float64(n+1),
				Y: platform.H/2 + lift + size/2,
			},
			Size: size,
		}
	}
	return &FishKind{Fish: fish}
}

// Platform is a pooled platform slot. It is recycled in place, never freed.
type Platform struct {
	Box        core.AABB
	Size       SizeClass
	Kind       PlatformKind
	Sprite     assets.Handle
	Generation int // Incremented on every respawn
	AnimTime   float64
}

// Update advances the platform's visual clock.
func (p *Platform) Update(dt float64) {
	p.AnimTime += dt
}

// Collectibles returns the platform's collectibles, or nil unless it is a fish platform.
func (p *Platform) Collectibles() []Collectible {
	if fk, ok := p.Kind.(*FishKind); ok {
		return fk.Fish
	}
	return nil
}
