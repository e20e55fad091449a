package baduk

import "math"

// Komi is the fixed compensation added to White's score.
const Komi = 6.5

const (
	WinnerBlack = "Black"
	WinnerWhite = "White"
	WinnerDraw  = "Draw"
)

// Territory holds the number of empty points surrounded by each color alone.
type Territory struct {
	Black int
	White int
}

// CountTerritory flood-fills every maximal empty region. A region belongs to
// a color only if every stone bordering the region is of that single color;
// regions touching both colors, or no stones at all, count for neither side.
func CountTerritory(board Board) Territory {
	size := board.Size()
	visited := make([]bool, size*size)

	var territory Territory
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			start := Point{Row: row, Col: col}
			if board.At(start) != Empty || visited[board.index(start)] {
				continue
			}

			regionSize := 0
			var sawBlack, sawWhite bool

			visited[board.index(start)] = true
			stack := []Point{start}

			for len(stack) > 0 {
				current := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				regionSize++

				for _, neighbor := range board.Neighbors(current) {
					switch board.At(neighbor) {
					case Empty:
						if !visited[board.index(neighbor)] {
							visited[board.index(neighbor)] = true
							stack = append(stack, neighbor)
						}
					case Black:
						sawBlack = true
					case White:
						sawWhite = true
					}
				}
			}

			switch {
			case sawBlack && !sawWhite:
				territory.Black += regionSize
			case sawWhite && !sawBlack:
				territory.White += regionSize
			}
		}
	}

	return territory
}

// ScoreResult is the final area-scoring outcome broadcast when a game ends.
type ScoreResult struct {
	BlackTerritory int     `json:"blackTerritory"`
	WhiteTerritory int     `json:"whiteTerritory"`
	BlackScore     float64 `json:"blackScore"`
	WhiteScore     float64 `json:"whiteScore"`
	Margin         float64 `json:"margin"`
	Winner         string  `json:"winner"`
}

// Score computes the final result: territory plus captures per color, with
// komi added to White only.
func Score(board Board, blackCaptures, whiteCaptures int) ScoreResult {
	territory := CountTerritory(board)

	result := ScoreResult{
		BlackTerritory: territory.Black,
		WhiteTerritory: territory.White,
		BlackScore:     float64(territory.Black + blackCaptures),
		WhiteScore:     float64(territory.White+whiteCaptures) + Komi,
	}

	result.Margin = math.Abs(result.WhiteScore - result.BlackScore)

	switch {
	case result.WhiteScore > result.BlackScore:
		result.Winner = WinnerWhite
	case result.BlackScore > result.WhiteScore:
		result.Winner = WinnerBlack
	default:
		result.Winner = WinnerDraw
	}

	return result
}
