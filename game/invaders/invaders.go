// Package invaders is a small deterministic duel between a ship on the
// bottom row and a single descending alien. It is the reference environment
// used by the CLI and by tests.
package invaders

import (
	"fmt"
	"math/rand"

	"github.com/podhmo/tickeval/game"
	"github.com/podhmo/tickeval/internal/xorshift"
)

// Config describes a board. Zero fields take the defaults of DefaultConfig.
type Config struct {
	Width        int   `yaml:"width"`
	Height       int   `yaml:"height"`
	DescendEvery int   `yaml:"descend_every"`
	MaxTicks     int   `yaml:"max_ticks"`
	Seed         int64 `yaml:"seed"`
}

// DefaultConfig returns the board used when nothing is configured.
func DefaultConfig() Config {
	return Config{Width: 11, Height: 8, DescendEvery: 3, MaxTicks: 200, Seed: 1}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 1 {
		c.Height = d.Height
	}
	if c.DescendEvery <= 0 {
		c.DescendEvery = d.DescendEvery
	}
	if c.MaxTicks <= 0 {
		c.MaxTicks = d.MaxTicks
	}
	return c
}

// Game implements game.Environment. It is not safe for concurrent use.
type Game struct {
	cfg Config
	rng *rand.Rand

	shipX  int
	alienX int
	alienY int
	dir    int

	ticks    int
	finished bool
	won      bool
}

var _ game.Environment = (*Game)(nil)

// New returns a game in its initial state.
func New(cfg Config) *Game {
	g := &Game{cfg: cfg.withDefaults()}
	g.Reset()
	return g
}

// Reset restores the initial state, reseeding the generator.
func (g *Game) Reset() {
	g.rng = rand.New(xorshift.New(g.cfg.Seed))
	g.shipX = g.cfg.Width / 2
	g.alienX = g.rng.Intn(g.cfg.Width)
	g.alienY = 0
	g.dir = 1
	if g.rng.Intn(2) == 0 {
		g.dir = -1
	}
	g.ticks = 0
	g.finished = false
	g.won = false
}

// Config returns the effective configuration.
func (g *Game) Config() Config { return g.cfg }

// Ticks returns the number of ticks played.
func (g *Game) Ticks() int { return g.ticks }

// Advance plays one tick. Moving into a wall fails; shooting succeeds only
// when it hits. Once finished every call fails and nothing changes.
func (g *Game) Advance(action game.Action) bool {
	if g.finished {
		return false
	}
	g.ticks++

	ok := false
	switch action {
	case game.Left:
		if g.shipX > 0 {
			g.shipX--
			ok = true
		}
	case game.Right:
		if g.shipX < g.cfg.Width-1 {
			g.shipX++
			ok = true
		}
	case game.Shoot:
		if g.alienX == g.shipX {
			g.finished = true
			g.won = true
			return true
		}
	case game.None:
		ok = true
	}

	g.moveAlien()
	switch {
	case g.alienY >= g.cfg.Height-1:
		g.finished = true
	case g.ticks >= g.cfg.MaxTicks:
		g.finished = true
	}
	return ok
}

func (g *Game) moveAlien() {
	if g.rng.Intn(4) == 0 {
		g.dir = -g.dir
	}
	if g.cfg.Width > 1 {
		nx := g.alienX + g.dir
		if nx < 0 || nx >= g.cfg.Width {
			g.dir = -g.dir
			nx = g.alienX + g.dir
		}
		g.alienX = nx
	}
	if g.ticks%g.cfg.DescendEvery == 0 {
		g.alienY++
	}
}

func (g *Game) DistanceX() int { return g.alienX - g.shipX }
func (g *Game) DistanceY() int { return g.cfg.Height - 1 - g.alienY }
func (g *Game) Finished() bool { return g.finished }
func (g *Game) Won() bool      { return g.won }

func (g *Game) String() string {
	return fmt.Sprintf("tick=%d ship=%d alien=(%d,%d) finished=%v won=%v",
		g.ticks, g.shipX, g.alienX, g.alienY, g.finished, g.won)
}
