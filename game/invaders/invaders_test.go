package invaders

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/podhmo/tickeval/game"
)

func TestSingleColumnBoard(t *testing.T) {
	g := New(Config{Width: 1, Height: 50, MaxTicks: 100})

	if got := g.DistanceX(); got != 0 {
		t.Fatalf("DistanceX() = %d, want 0", got)
	}
	if g.Advance(game.Left) {
		t.Error("moving left into the wall succeeded")
	}
	if g.Advance(game.Right) {
		t.Error("moving right into the wall succeeded")
	}
	if !g.Advance(game.Shoot) {
		t.Error("shooting an aligned alien missed")
	}
	if !g.Finished() || !g.Won() {
		t.Errorf("after a hit: finished=%v won=%v, want both true", g.Finished(), g.Won())
	}
	if g.Advance(game.None) {
		t.Error("Advance on a finished game succeeded")
	}
	if got := g.Ticks(); got != 3 {
		t.Errorf("Ticks() = %d, want 3", got)
	}
}

func TestTickLimit(t *testing.T) {
	g := New(Config{Width: 1, Height: 50, MaxTicks: 5})
	for i := 0; i < 5; i++ {
		if g.Finished() {
			t.Fatalf("finished early at tick %d", i)
		}
		if !g.Advance(game.None) {
			t.Fatalf("Advance(None) failed at tick %d", i)
		}
	}
	if !g.Finished() || g.Won() {
		t.Errorf("finished=%v won=%v, want finished and lost", g.Finished(), g.Won())
	}
}

func TestAlienLands(t *testing.T) {
	g := New(Config{Width: 5, Height: 3, DescendEvery: 1, MaxTicks: 100})
	if got := g.DistanceY(); got != 2 {
		t.Fatalf("DistanceY() = %d, want 2", got)
	}
	g.Advance(game.None)
	if got := g.DistanceY(); got != 1 {
		t.Errorf("DistanceY() after one tick = %d, want 1", got)
	}
	g.Advance(game.None)
	if !g.Finished() || g.Won() {
		t.Errorf("finished=%v won=%v, want finished and lost", g.Finished(), g.Won())
	}
}

func TestResetReplaysTheSameGame(t *testing.T) {
	play := func(g *Game) []int {
		var xs []int
		for !g.Finished() {
			g.Advance(game.Right)
			xs = append(xs, g.DistanceX())
		}
		return xs
	}

	g := New(Config{Width: 9, Height: 6, Seed: 12345})
	first := play(g)
	g.Reset()
	second := play(g)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("replay after Reset differs (-first +second):\n%s", diff)
	}

	other := play(New(Config{Width: 9, Height: 6, Seed: 12345}))
	if diff := cmp.Diff(first, other); diff != "" {
		t.Errorf("identically seeded game differs (-first +other):\n%s", diff)
	}
}

func TestAlienStaysOnBoard(t *testing.T) {
	g := New(Config{Width: 4, Height: 100, DescendEvery: 50, MaxTicks: 500, Seed: 3})
	for !g.Finished() {
		g.Advance(game.None)
		if g.alienX < 0 || g.alienX >= 4 {
			t.Fatalf("alien left the board: %s", g)
		}
	}
}

func TestDefaults(t *testing.T) {
	g := New(Config{})
	want := DefaultConfig()
	want.Seed = 0 // zero is a valid seed and is kept
	if diff := cmp.Diff(want, g.Config()); diff != "" {
		t.Errorf("effective config mismatch (-want +got):\n%s", diff)
	}
}
