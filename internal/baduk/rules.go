package baduk

import "errors"

var (
	ErrOutOfBounds = errors.New("point is outside the board")
	ErrOccupied    = errors.New("point is already occupied")
	ErrKoViolation = errors.New("ko rule forbids this move")
	ErrSuicide     = errors.New("move would leave the group without liberties")
)

// Placement is the outcome of a legal stone placement.
type Placement struct {
	Board    Board
	Captured []Point
	KoPoint  *Point
}

// PlaceStone validates a move against one board snapshot and, when legal,
// returns the resulting board with all captures resolved. The input board is
// never mutated, so a rejected move leaves no partial capture behind.
//
// The ko point is set only when the move captured exactly one stone and the
// placing group ended with exactly one liberty; it is that captured stone's
// coordinate.
func PlaceStone(board Board, koPoint *Point, p Point, color Stone) (Placement, error) {
	if !board.Contains(p) {
		return Placement{}, ErrOutOfBounds
	}

	if board.At(p) != Empty {
		return Placement{}, ErrOccupied
	}

	if koPoint != nil && *koPoint == p {
		return Placement{}, ErrKoViolation
	}

	next := board.Clone()
	next[p.Row][p.Col] = color

	opponent := color.Opponent()
	size := next.Size()
	checked := make([]bool, size*size)

	var captured []Point
	for _, neighbor := range next.Neighbors(p) {
		if next.At(neighbor) != opponent || checked[next.index(neighbor)] {
			continue
		}

		group := next.GroupAt(neighbor)
		for _, stone := range group.Stones {
			checked[next.index(stone)] = true
		}

		if len(group.Liberties) == 0 {
			captured = append(captured, group.Stones...)
		}
	}

	for _, stone := range captured {
		next[stone.Row][stone.Col] = Empty
	}

	own := next.GroupAt(p)
	if len(own.Liberties) == 0 {
		return Placement{}, ErrSuicide
	}

	var nextKo *Point
	if len(captured) == 1 && len(own.Liberties) == 1 {
		nextKo = &Point{Row: captured[0].Row, Col: captured[0].Col}
	}

	return Placement{Board: next, Captured: captured, KoPoint: nextKo}, nil
}
