// Package game defines the contract between an agent program interpreter and
// the turn-based game it plays.
package game

// Action is what the agent does during one tick.
type Action int

const (
	None Action = iota
	Left
	Right
	Shoot
)

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	case Shoot:
		return "shoot"
	}
	return "unknown"
}

// Environment is the game as seen by the interpreter. Every call to Advance
// is one tick. Implementations are used from a single goroutine.
type Environment interface {
	// Advance applies the action and reports whether it succeeded.
	Advance(action Action) bool
	DistanceX() int
	DistanceY() int
	Finished() bool
	Won() bool
}
