package apperror

import "errors"

var (
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameFinished     = errors.New("game is already over")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNotLastActor     = errors.New("only the player who moved last can undo")

	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room is full")
	ErrNotHost          = errors.New("only the host can start")
	ErrNotEnoughPlayers = errors.New("waiting for opponent")
)
