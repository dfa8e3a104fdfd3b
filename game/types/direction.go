package types

type Direction int

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit vector for the direction
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoDirection
}

func (d Direction) IsOpposite(other Direction) bool {
	return d != NoDirection && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
