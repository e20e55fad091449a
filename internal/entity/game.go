package entity

import (
	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/baduk"
)

// DefaultBoardSize is used when a start request carries an unsupported size.
const DefaultBoardSize = 19

// SupportedBoardSizes are the side lengths a game may be started with.
var SupportedBoardSizes = []int{9, 13, 19}

// Captures tallies stones captured by each color.
type Captures struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Game is one session of play. The exported fields are the wire state
// broadcast to both seats; the seat assignment and the undo history never
// leave the server.
type Game struct {
	Size          int          `json:"size"`
	Board         baduk.Board  `json:"board"`
	Current       baduk.Stone  `json:"current"`
	LastMove      *baduk.Point `json:"lastMove"`
	KoPoint       *baduk.Point `json:"koPoint"`
	Captures      Captures     `json:"captures"`
	Passes        int          `json:"passes"`
	GameOver      bool         `json:"gameOver"`
	GameStarted   bool         `json:"gameStarted"`
	LastActorSeat int          `json:"lastActorSeat"`

	blackSeat int
	whiteSeat int
	history   []historyEntry
}

// historyEntry is one undo step: the full session state as it was before the
// recorded seat acted.
type historyEntry struct {
	snapshot   snapshot
	actingSeat int
}

type snapshot struct {
	board         baduk.Board
	current       baduk.Stone
	lastMove      *baduk.Point
	koPoint       *baduk.Point
	captures      Captures
	passes        int
	gameOver      bool
	lastActorSeat int
}

// NormalizeBoardSize maps any requested size onto a supported one.
func NormalizeBoardSize(size int) int {
	for _, supported := range SupportedBoardSizes {
		if size == supported {
			return size
		}
	}

	return DefaultBoardSize
}

// NewGame starts a fresh session on an empty board. Black always moves first;
// which seat plays Black is decided by the caller's coin flip.
func NewGame(size, blackSeat, whiteSeat int) *Game {
	return &Game{
		Size:        size,
		Board:       baduk.NewBoard(size),
		Current:     baduk.Black,
		GameStarted: true,
		blackSeat:   blackSeat,
		whiteSeat:   whiteSeat,
	}
}

// ColorOf returns the color assigned to the given seat.
func (that *Game) ColorOf(seat int) baduk.Stone {
	if seat == that.blackSeat {
		return baduk.Black
	}

	return baduk.White
}

// MakeMove validates and applies a stone placement for the given seat.
// On any rejection the session state is unchanged.
func (that *Game) MakeMove(seat, row, col int) error {
	if err := that.confirmInProgress(); err != nil {
		return err
	}

	color := that.ColorOf(seat)
	if that.Current != color {
		return apperror.ErrNotYourTurn
	}

	placement, err := baduk.PlaceStone(that.Board, that.KoPoint, baduk.Point{Row: row, Col: col}, color)
	if err != nil {
		return err
	}

	that.pushHistory(seat)

	that.Board = placement.Board
	that.KoPoint = placement.KoPoint
	that.LastMove = &baduk.Point{Row: row, Col: col}
	that.Passes = 0
	that.LastActorSeat = seat

	if captured := len(placement.Captured); captured > 0 {
		if color == baduk.Black {
			that.Captures.Black += captured
		} else {
			that.Captures.White += captured
		}
	}

	that.Current = that.Current.Opponent()

	return nil
}

// Pass records a pass for the given seat. It reports whether this pass was
// the second in a row and therefore ended the game.
func (that *Game) Pass(seat int) (bool, error) {
	if err := that.confirmInProgress(); err != nil {
		return false, err
	}

	if that.Current != that.ColorOf(seat) {
		return false, apperror.ErrNotYourTurn
	}

	that.pushHistory(seat)

	that.Passes++
	that.KoPoint = nil
	that.LastActorSeat = seat

	if that.Passes >= 2 {
		that.GameOver = true
		return true, nil
	}

	that.Current = that.Current.Opponent()

	return false, nil
}

// Undo pops the most recent history entry, but only for the seat that made
// it. The restored snapshot may encode a finished game; undoing the second
// pass therefore reopens the session.
func (that *Game) Undo(seat int) error {
	if !that.GameStarted {
		return apperror.ErrGameIsNotStarted
	}

	if len(that.history) == 0 {
		return apperror.ErrNothingToUndo
	}

	last := that.history[len(that.history)-1]
	if last.actingSeat != seat {
		return apperror.ErrNotLastActor
	}

	that.history = that.history[:len(that.history)-1]
	that.restore(last.snapshot)

	return nil
}

// Clone returns a copy of the wire state that is safe to marshal after the
// room lock has been released. The undo history is not carried over.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()
	clone.LastMove = clonePoint(that.LastMove)
	clone.KoPoint = clonePoint(that.KoPoint)
	clone.history = nil

	return &clone
}

// Score computes the final area score of the current board.
func (that *Game) Score() baduk.ScoreResult {
	return baduk.Score(that.Board, that.Captures.Black, that.Captures.White)
}

func (that *Game) confirmInProgress() error {
	switch {
	case !that.GameStarted:
		return apperror.ErrGameIsNotStarted
	case that.GameOver:
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

func (that *Game) pushHistory(seat int) {
	that.history = append(that.history, historyEntry{
		snapshot:   that.snapshot(),
		actingSeat: seat,
	})
}

func (that *Game) snapshot() snapshot {
	return snapshot{
		board:         that.Board.Clone(),
		current:       that.Current,
		lastMove:      clonePoint(that.LastMove),
		koPoint:       clonePoint(that.KoPoint),
		captures:      that.Captures,
		passes:        that.Passes,
		gameOver:      that.GameOver,
		lastActorSeat: that.LastActorSeat,
	}
}

func (that *Game) restore(s snapshot) {
	that.Board = s.board
	that.Current = s.current
	that.LastMove = s.lastMove
	that.KoPoint = s.koPoint
	that.Captures = s.captures
	that.Passes = s.passes
	that.GameOver = s.gameOver
	that.LastActorSeat = s.lastActorSeat
}

func clonePoint(p *baduk.Point) *baduk.Point {
	if p == nil {
		return nil
	}

	clone := *p
	return &clone
}
