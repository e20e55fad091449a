package baduk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountTerritory(t *testing.T) {
	t.Run("Empty board is one neutral region", func(t *testing.T) {
		// Given: a 9x9 board with no stones at all
		board := NewBoard(9)

		// When: counting territory
		territory := CountTerritory(board)

		// Then: no bordering stones means nobody owns anything
		assert.Zero(t, territory.Black)
		assert.Zero(t, territory.White)
	})

	t.Run("Walls split the board into owned and neutral regions", func(t *testing.T) {
		// Given: a black wall on column 1 and a white wall on column 3
		board := boardFromRows(t,
			".B.W.",
			".B.W.",
			".B.W.",
			".B.W.",
			".B.W.",
		)

		// When: counting territory
		territory := CountTerritory(board)

		// Then: column 0 is black's, column 4 is white's, column 2 is neutral
		assert.Equal(t, 5, territory.Black)
		assert.Equal(t, 5, territory.White)
	})

	t.Run("Region bordering both colors counts for neither", func(t *testing.T) {
		// Given: a single open area touching both a black and a white stone
		board := boardFromRows(t,
			"B....",
			".....",
			".....",
			".....",
			"....W",
		)

		territory := CountTerritory(board)

		assert.Zero(t, territory.Black)
		assert.Zero(t, territory.White)
	})
}

func TestScore(t *testing.T) {
	t.Run("Komi is added to white only", func(t *testing.T) {
		// Given: a balanced position with five points of territory each
		board := boardFromRows(t,
			".B.W.",
			".B.W.",
			".B.W.",
			".B.W.",
			".B.W.",
		)

		// When: scoring with no captures
		result := Score(board, 0, 0)

		// Then: white wins by exactly the komi
		require.Equal(t, 5, result.BlackTerritory)
		require.Equal(t, 5, result.WhiteTerritory)
		assert.InDelta(t, 5.0, result.BlackScore, 0.001)
		assert.InDelta(t, 5.0+Komi, result.WhiteScore, 0.001)
		assert.InDelta(t, Komi, result.Margin, 0.001)
		assert.Equal(t, WinnerWhite, result.Winner)
	})

	t.Run("Captures are added to the capturing color", func(t *testing.T) {
		// Given: the same balanced position, black holding ten captures
		board := boardFromRows(t,
			".B.W.",
			".B.W.",
			".B.W.",
			".B.W.",
			".B.W.",
		)

		// When: scoring
		result := Score(board, 10, 0)

		// Then: black overtakes white despite the komi
		assert.InDelta(t, 15.0, result.BlackScore, 0.001)
		assert.InDelta(t, 11.5, result.WhiteScore, 0.001)
		assert.InDelta(t, 3.5, result.Margin, 0.001)
		assert.Equal(t, WinnerBlack, result.Winner)
	})
}
