package facility

// Direction identifies which control-room door a final room approaches through.
type Direction int

// Direction constants
const (
	None Direction = iota
	Front
	Left
	Right
)

// AllDirections returns every door direction for iteration
func AllDirections() []Direction {
	return []Direction{Front, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Front:
		return "front"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// IsValid returns true if the direction names an actual door
func (d Direction) IsValid() bool {
	return d >= Front && d <= Right
}

// ParseDirection converts "front", "left" or "right" into a Direction.
// Anything else yields None.
func ParseDirection(s string) Direction {
	switch s {
	case "front", "f":
		return Front
	case "left", "l":
		return Left
	case "right", "r":
		return Right
	default:
		return None
	}
}

// MarshalText lets directions serialise as their names in JSON payloads.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (d *Direction) UnmarshalText(b []byte) error {
	*d = ParseDirection(string(b))
	return nil
}
