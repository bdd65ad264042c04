// Package sim is the fishrun simulation: a side-scrolling world of pooled
// platforms, collectible fish and flying enemies, advanced one frame at a
// time by Step. It has no knowledge of terminals or wall-clock time.
package sim

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/fishrun/internal/assets"
	"github.com/vovakirdan/fishrun/internal/config"
	"github.com/vovakirdan/fishrun/internal/core"
)

// Stats counts what happened over a run.
type Stats struct {
	Frames             int
	Elapsed            float64
	Collected          int
	Respawns           int
	PlacementFallbacks int
	EnemiesSpawned     int
	EnemiesRecycled    int
	Hits               int
}

type spriteSet struct {
	background assets.Handle
	score      assets.Handle
	fish       assets.Handle
	platform   [3]assets.Handle // indexed by KindTag
	enemy      []assets.Handle  // indexed like cfg.Enemies.Species
}

// World owns every entity and the seeded random source. All randomness in
// a run comes from that one source, so (config, seed, inputs) fully
// determine the outcome.
type World struct {
	cfg        config.FishRunConfig
	bounds     Bounds
	rng        *rand.Rand
	mode       LandingMode
	difficulty *config.DifficultyManager
	sprites    spriteSet

	player    Player
	platforms []Platform
	enemies   []Enemy
	spawner   SpawnTimer

	score        int
	lives        int
	invulnerable float64
	gameOver     bool
	stats        Stats
}

// New builds a world from configuration. Sprites are resolved through
// loader once, here; entities keep only handles.
func New(cfg config.FishRunConfig, seed int64, loader assets.Loader) (*World, error) {
	if loader == nil {
		return nil, fmt.Errorf("sim: nil sprite loader")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		cfg:        cfg,
		bounds:     BoundsFor(cfg.World),
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		spawner:    SpawnTimer{Delay: cfg.Enemies.SpawnDelay},
		lives:      cfg.Gameplay.Lives,
	}
	if cfg.Physics.StrictLanding {
		w.mode = LandingStrict
	}

	if err := w.loadSprites(loader); err != nil {
		return nil, err
	}

	w.player = Player{
		Box: core.NewAABB(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Width, cfg.Player.Height),
	}
	for _, name := range cfg.Player.Frames {
		h, err := loader.Load(name)
		if err != nil {
			return nil, fmt.Errorf("sim: player frame: %w", err)
		}
		w.player.Frames = append(w.player.Frames, h)
	}

	w.platforms = make([]Platform, 0, len(cfg.Platforms.Seeds))
	for i, seed := range cfg.Platforms.Seeds {
		size, ok := ParseSizeClass(seed.Size)
		if !ok {
			return nil, fmt.Errorf("sim: seed %d: unknown size class %q", i, seed.Size)
		}
		tag, ok := ParseKindTag(seed.Kind)
		if !ok {
			return nil, fmt.Errorf("sim: seed %d: unknown kind %q", i, seed.Kind)
		}
		dims := cfg.Platforms.Sizes[seed.Size]
		box := core.NewAABB(seed.X, seed.Y, dims.Width, dims.Height)
		w.platforms = append(w.platforms, Platform{
			Box:    box,
			Size:   size,
			Kind:   w.newKind(tag, box),
			Sprite: w.sprites.platform[tag],
		})
	}
	return w, nil
}

func (w *World) loadSprites(loader assets.Loader) error {
	load := func(name string) (assets.Handle, error) {
		h, err := loader.Load(name)
		if err != nil {
			return assets.Handle{}, fmt.Errorf("sim: %w", err)
		}
		return h, nil
	}

	var err error
	if w.sprites.background, err = load("background"); err != nil {
		return err
	}
	if w.sprites.score, err = load("score"); err != nil {
		return err
	}
	if w.sprites.fish, err = load("fish"); err != nil {
		return err
	}
	for _, tag := range []KindTag{TagPlain, TagFish, TagEnemy} {
		if w.sprites.platform[tag], err = load("platform." + tag.String()); err != nil {
			return err
		}
	}
	for _, sp := range w.cfg.Enemies.Species {
		h, err := load("enemy." + sp.Name)
		if err != nil {
			return err
		}
		w.sprites.enemy = append(w.sprites.enemy, h)
	}
	return nil
}

func (w *World) newKind(tag KindTag, box core.AABB) PlatformKind {
	switch tag {
	case TagFish:
		p := w.cfg.Platforms
		return newFishKind(box, p.CollectiblesPerPlatform, p.CollectibleSize, p.CollectibleLift)
	case TagEnemy:
		return EnemyKind{}
	default:
		return PlainKind{}
	}
}

// Step advances the world by dt seconds using input sampled for this frame
// and returns the events it produced. A non-positive dt or a finished game
// leaves the world untouched.
func (w *World) Step(dt float64, in core.Input) []core.Event {
	if dt <= 0 || w.gameOver {
		return nil
	}
	var events []core.Event
	w.stats.Frames++

	// Player
	scroll := w.player.Update(dt, in, w.cfg.Physics, w.bounds)

	// Platforms and pickups
	for i := range w.platforms {
		w.platforms[i].Update(dt)
	}
	events = w.collect(events)

	// Enemies
	speedScale := w.difficulty.Speed(1, w.Progress())
	for i := range w.enemies {
		e := &w.enemies[i]
		e.Update(dt, e.Species.Speed*speedScale)
		if e.OffScreen(w.bounds) {
			band := enemyBand(w.bounds, w.cfg.World.SpawnMarginY, enemyClearance(w.player, e.Box.W))
			e.Box = e.Box.MoveTo(band.Sample(w.rng))
			w.stats.EnemiesRecycled++
			events = append(events, core.Event{Kind: core.EventEnemyRecycle, Index: i, Tag: e.Species.Name})
		}
	}
	events = w.checkEnemyContact(events)

	// Platform recycling, in pool order
	for i := range w.platforms {
		if w.platforms[i].Box.Right() < w.bounds.Left {
			events = w.respawn(i, events)
		}
	}

	// Landing
	resolveLanding(&w.player, w.platforms, w.mode, w.cfg.Physics.StandTolerance)

	// World scroll
	if scroll != 0 {
		for i := range w.platforms {
			w.platforms[i].Box = w.platforms[i].Box.Translate(-scroll, 0)
		}
		for i := range w.enemies {
			w.enemies[i].Box = w.enemies[i].Box.Translate(-scroll, 0)
		}
	}

	// Timers
	if w.invulnerable > 0 {
		w.invulnerable = max(0, w.invulnerable-dt)
	}
	w.spawner.Delay = w.difficulty.SpawnDelay(w.cfg.Enemies.SpawnDelay, w.Progress())
	if w.spawner.Advance(dt) {
		events = w.spawnEnemy(events)
	}
	w.stats.Elapsed += dt

	return events
}

func (w *World) collect(events []core.Event) []core.Event {
	for i := range w.platforms {
		fk, ok := w.platforms[i].Kind.(*FishKind)
		if !ok {
			continue
		}
		for j := range fk.Fish {
			c := &fk.Fish[j]
			if c.Taken || !core.Intersects(c.Box(w.platforms[i].Box), w.player.Box) {
				continue
			}
			c.Taken = true
			w.score++
			w.stats.Collected++
			events = append(events, core.Event{Kind: core.EventPickup, Index: i, Tag: strconv.Itoa(j)})
		}
	}
	return events
}

func (w *World) checkEnemyContact(events []core.Event) []core.Event {
	if w.invulnerable > 0 {
		return events
	}
	for i := range w.enemies {
		if !core.Intersects(w.enemies[i].Box, w.player.Box) {
			continue
		}
		w.lives--
		w.stats.Hits++
		w.invulnerable = w.cfg.Gameplay.InvulnerableSecs
		events = append(events, core.Event{Kind: core.EventHit, Index: i, Tag: w.enemies[i].Species.Name})
		if w.lives <= 0 {
			w.lives = 0
			w.gameOver = true
			events = append(events, core.Event{Kind: core.EventGameOver, Index: -1})
		}
		break
	}
	return events
}

func (w *World) respawn(i int, events []core.Event) []core.Event {
	tag := drawKind(w.rng, w.cfg.Platforms.Weights)
	box, ok := placePlatform(w.rng, w.platforms, i,
		respawnBand(w.bounds, w.cfg.World.SpawnMarginY), w.cfg.World.MaxPlacementAttempts)

	p := &w.platforms[i]
	p.Box = box
	p.Kind = w.newKind(tag, box)
	p.Sprite = w.sprites.platform[tag]
	p.Generation++
	w.stats.Respawns++

	events = append(events, core.Event{Kind: core.EventRespawn, Index: i, Tag: tag.String()})
	if !ok {
		w.stats.PlacementFallbacks++
		events = append(events, core.Event{Kind: core.EventPlacementFallback, Index: i, Tag: tag.String()})
	}
	return events
}

func (w *World) spawnEnemy(events []core.Event) []core.Event {
	species := w.cfg.Enemies.Species
	if len(species) == 0 {
		return events
	}
	if limit := w.cfg.Enemies.MaxAlive; limit > 0 && len(w.enemies) >= limit {
		return events
	}

	k := w.rng.Intn(len(species))
	sp := species[k]
	pos := enemyBand(w.bounds, w.cfg.World.SpawnMarginY, enemyClearance(w.player, sp.Width)).Sample(w.rng)
	w.enemies = append(w.enemies, Enemy{
		Box:     core.NewAABB(pos.X, pos.Y, sp.Width, sp.Height),
		Species: sp,
		Sprite:  w.sprites.enemy[k],
	})
	w.stats.EnemiesSpawned++
	return append(events, core.Event{Kind: core.EventEnemySpawn, Index: len(w.enemies) - 1, Tag: sp.Name})
}

// Bounds returns the visible world rectangle.
func (w *World) Bounds() Bounds { return w.bounds }

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Platforms returns a copy of the platform pool in index order.
func (w *World) Platforms() []Platform {
	out := make([]Platform, len(w.platforms))
	copy(out, w.platforms)
	return out
}

// Enemies returns a copy of the live enemies.
func (w *World) Enemies() []Enemy {
	out := make([]Enemy, len(w.enemies))
	copy(out, w.enemies)
	return out
}

// Score is the number of fish collected.
func (w *World) Score() int { return w.score }

// Lives left.
func (w *World) Lives() int { return w.lives }

// Invulnerable returns the seconds of hit immunity remaining.
func (w *World) Invulnerable() float64 { return w.invulnerable }

// GameOver reports whether the player ran out of lives.
func (w *World) GameOver() bool { return w.gameOver }

// Mode returns the landing mode in effect.
func (w *World) Mode() LandingMode { return w.mode }

// Progress reports the score and elapsed time that drive difficulty.
func (w *World) Progress() config.Progress {
	return config.Progress{Score: w.score, Elapsed: w.stats.Elapsed}
}

// Difficulty exposes the manager scaling enemy speed and spawn delay.
func (w *World) Difficulty() *config.DifficultyManager { return w.difficulty }

// Stats returns run counters.
func (w *World) Stats() Stats { return w.stats }
