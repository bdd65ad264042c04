package sim

import (
	"fmt"

	"github.com/vovakirdan/fishrun/internal/assets"
	"github.com/vovakirdan/fishrun/internal/core"
)

// Layer tags what a draw item represents.
type Layer int

const (
	LayerBackground Layer = iota
	LayerPlatform
	LayerCollectible
	LayerPlayer
	LayerEnemy
	LayerScore
)

func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerPlatform:
		return "platform"
	case LayerCollectible:
		return "collectible"
	case LayerPlayer:
		return "player"
	case LayerEnemy:
		return "enemy"
	case LayerScore:
		return "score"
	default:
		return "unknown"
	}
}

// DrawItem is one entry of the ordered scene description. Later items are
// drawn over earlier ones.
type DrawItem struct {
	Layer  Layer
	Box    core.AABB
	Sprite assets.Handle
	Index  int    // Pool index for platforms, collectibles and enemies; -1 otherwise
	Text   string // Score label
}

// Scene describes what to draw this frame, back to front: background,
// platforms in reverse pool order each followed by its untaken fish, the
// player, enemies, then the score.
func (w *World) Scene() []DrawItem {
	items := make([]DrawItem, 0, 3+len(w.platforms)*(1+w.cfg.Platforms.CollectiblesPerPlatform)+len(w.enemies))

	items = append(items, DrawItem{
		Layer:  LayerBackground,
		Box:    w.bounds.Box(),
		Sprite: w.sprites.background,
		Index:  -1,
	})

	for i := len(w.platforms) - 1; i >= 0; i-- {
		p := &w.platforms[i]
		items = append(items, DrawItem{Layer: LayerPlatform, Box: p.Box, Sprite: p.Sprite, Index: i})
		for _, c := range p.Collectibles() {
			if c.Taken {
				continue
			}
			items = append(items, DrawItem{Layer: LayerCollectible, Box: c.Box(p.Box), Sprite: w.sprites.fish, Index: i})
		}
	}

	var frame assets.Handle
	if len(w.player.Frames) > 0 {
		frame = w.player.Frames[0]
	}
	items = append(items, DrawItem{Layer: LayerPlayer, Box: w.player.Box, Sprite: frame, Index: -1})

	for i := range w.enemies {
		items = append(items, DrawItem{Layer: LayerEnemy, Box: w.enemies[i].Box, Sprite: w.enemies[i].Sprite, Index: i})
	}

	items = append(items, DrawItem{
		Layer:  LayerScore,
		Sprite: w.sprites.score,
		Index:  -1,
		Text:   fmt.Sprintf("Score: %d", w.score),
	})
	return items
}
