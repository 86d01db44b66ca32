package game

// Player identifies one of the two sides. The zero value NoPlayer stands for
// an empty cell and for a tied outcome.
type Player int8

const (
	NoPlayer Player = iota
	White
	Black
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoPlayer"
	}
}
