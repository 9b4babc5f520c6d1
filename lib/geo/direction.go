package geo

// Direction is the outward-facing side a connector leaves (or enters) an
// anchor from. NoDirection means the endpoint is unconstrained.
type Direction int

const (
	NoDirection Direction = iota

	Up
	Right
	Down
	Left
)

func (d Direction) ToString() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return ""
	}
}

func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

func (d Direction) GetOpposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// RotateQuarters rotates the direction clockwise by the given number of
// quarter turns. Negative counts rotate counter-clockwise.
func (d Direction) RotateQuarters(quarters int) Direction {
	if d == NoDirection {
		return d
	}
	order := []Direction{Up, Right, Down, Left}
	var i int
	for j, o := range order {
		if o == d {
			i = j
			break
		}
	}
	i = (i + quarters) % 4
	if i < 0 {
		i += 4
	}
	return order[i]
}

// Vector returns the unit deltas of the direction in screen coordinates
// (y grows downward).
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}
