package baduk

// Stone is the content of a single board cell. The numeric values are the
// wire representation (0 empty, 1 black, 2 white).
type Stone int

const (
	Empty Stone = iota
	Black
	White
)

// Opponent returns the other playing color. Empty has no opponent.
func (that Stone) Opponent() Stone {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (that Stone) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Point addresses a single intersection on the board.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a square grid of stones. Boards are treated as immutable by the
// rules functions: PlaceStone works on a clone and never touches its input.
type Board [][]Stone

// NewBoard returns an empty board of the given side length.
func NewBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]Stone, size)
	}

	return board
}

// Size returns the side length of the board.
func (that Board) Size() int {
	return len(that)
}

// At returns the stone at p.
func (that Board) At(p Point) Stone {
	return that[p.Row][p.Col]
}

// Contains reports whether p lies on the board.
func (that Board) Contains(p Point) bool {
	size := that.Size()
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Clone returns a deep copy of the board.
func (that Board) Clone() Board {
	clone := make(Board, len(that))
	for row := range that {
		clone[row] = make([]Stone, len(that[row]))
		copy(clone[row], that[row])
	}

	return clone
}

// Neighbors returns the orthogonally adjacent points of p that lie on the board.
func (that Board) Neighbors(p Point) []Point {
	candidates := [4]Point{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}

	neighbors := make([]Point, 0, 4)
	for _, candidate := range candidates {
		if that.Contains(candidate) {
			neighbors = append(neighbors, candidate)
		}
	}

	return neighbors
}

// index packs a point into a flat offset for visited tracking.
func (that Board) index(p Point) int {
	return p.Row*that.Size() + p.Col
}

// Group holds a maximal chain of same-colored stones and its liberties.
type Group struct {
	Stones    []Point
	Liberties []Point
}

// GroupAt flood-fills from a non-empty cell over same-color neighbors.
// Every connected stone is visited exactly once; liberties are collected
// without duplicates. Calling it on an empty cell returns a zero Group.
func (that Board) GroupAt(p Point) Group {
	color := that.At(p)
	if color == Empty {
		return Group{}
	}

	size := that.Size()
	visited := make([]bool, size*size)
	seenLiberty := make([]bool, size*size)
	visited[that.index(p)] = true

	group := Group{Stones: make([]Point, 0, 4)}
	stack := []Point{p}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group.Stones = append(group.Stones, current)

		for _, neighbor := range that.Neighbors(current) {
			switch that.At(neighbor) {
			case Empty:
				if !seenLiberty[that.index(neighbor)] {
					seenLiberty[that.index(neighbor)] = true
					group.Liberties = append(group.Liberties, neighbor)
				}
			case color:
				if !visited[that.index(neighbor)] {
					visited[that.index(neighbor)] = true
					stack = append(stack, neighbor)
				}
			}
		}
	}

	return group
}
