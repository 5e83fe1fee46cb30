package game

// Config holds the immutable rules constants for one game. It is passed
// explicitly into every rules call; nothing in this package mutates it.
type Config struct {
	Width  int
	Height int

	GrowthPerFood int // pending-growth ticks granted per food eaten

	TrapPenalty        int // score lost per trap hit
	TrapSegmentPenalty int // segments (or pending growth) lost per trap hit

	HeadCollisionPenalty    int // score lost by the loser(s) of a head-to-head
	CollisionSegmentPenalty int // segments lost by the loser(s) of a head-to-head

	MinSnakeLength int     // penalty trims never shrink a snake below this
	ShieldDuration float64 // seconds of immunity granted by penalty events
	TickSeconds    float64 // simulated wall time of one grid step
}

// DefaultConfig returns the standard duel rules: a 40x30 board with the
// stock penalty magnitudes.
func DefaultConfig() Config {
	return Config{
		Width:                   40,
		Height:                  30,
		GrowthPerFood:           2,
		TrapPenalty:             2,
		TrapSegmentPenalty:      3,
		HeadCollisionPenalty:    4,
		CollisionSegmentPenalty: 2,
		MinSnakeLength:          5,
		ShieldDuration:          2.0,
		TickSeconds:             0.1,
	}
}

// InBounds reports whether c lies on the board.
func (c *Config) InBounds(cell Cell) bool {
	return cell.X >= 0 && cell.X < c.Width && cell.Y >= 0 && cell.Y < c.Height
}
