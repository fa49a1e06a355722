package apparel

// Position is the body slot a garment occupies
type Position string

// Define all available apparel positions
const (
	PositionHead  Position = "head"
	PositionTorso Position = "torso"
	PositionHands Position = "hands"
	PositionFeet  Position = "feet"
)

// String returns the string representation of the position
func (p Position) String() string {
	return string(p)
}

// IsValid checks if the position is one of the four body slots
func (p Position) IsValid() bool {
	switch p {
	case PositionHead, PositionTorso, PositionHands, PositionFeet:
		return true
	default:
		return false
	}
}

// AllPositions returns every position in slot order
func AllPositions() []Position {
	return []Position{
		PositionHead,
		PositionTorso,
		PositionHands,
		PositionFeet,
	}
}

// PositionFromString converts a string to a Position.
// Returns the position and true if valid, empty position and false if invalid
func PositionFromString(s string) (Position, bool) {
	p := Position(s)
	if p.IsValid() {
		return p, true
	}
	return "", false
}
