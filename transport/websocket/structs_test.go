package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/goban-backend/internal/apperror"
	"github.com/rocketscienceinc/goban-backend/internal/baduk"
)

func TestRequest_Decoding(t *testing.T) {
	t.Run("Move carries both coordinates", func(t *testing.T) {
		var req Request
		require.NoError(t, json.Unmarshal([]byte(`{"type":"move","row":0,"col":3}`), &req))

		assert.Equal(t, actionMove, req.Type)
		require.NotNil(t, req.Row)
		require.NotNil(t, req.Col)
		assert.Equal(t, 0, *req.Row)
		assert.Equal(t, 3, *req.Col)
	})

	t.Run("Missing coordinates decode as nil, not zero", func(t *testing.T) {
		var req Request
		require.NoError(t, json.Unmarshal([]byte(`{"type":"move"}`), &req))

		assert.Nil(t, req.Row)
		assert.Nil(t, req.Col)
	})

	t.Run("Unknown fields are ignored", func(t *testing.T) {
		var req Request
		require.NoError(t, json.Unmarshal([]byte(`{"type":"join_room","code":"ab2cd","extra":true}`), &req))

		assert.Equal(t, actionJoinRoom, req.Type)
		assert.Equal(t, "ab2cd", req.Code)
	})
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{apperror.ErrRoomNotFound, "Room not found."},
		{apperror.ErrRoomFull, "Room is full."},
		{apperror.ErrNotHost, "Only the host can start."},
		{apperror.ErrNotEnoughPlayers, "Waiting for opponent."},
		{apperror.ErrGameIsNotStarted, "Game not started."},
		{apperror.ErrGameFinished, "Game is over."},
		{apperror.ErrNotYourTurn, "Not your turn."},
		{apperror.ErrNothingToUndo, "Nothing to undo."},
		{apperror.ErrNotLastActor, "Only the player who moved last can undo."},
		{baduk.ErrOccupied, "Illegal move: point is occupied."},
		{baduk.ErrKoViolation, "Illegal move: ko."},
		{baduk.ErrSuicide, "Illegal move: suicide."},
		{baduk.ErrOutOfBounds, "Invalid message."},
		{errors.New("something else"), "Invalid message."},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, errorText(test.err))
	}

	// Wrapped rejections still map to their message.
	wrapped := fmt.Errorf("failed to place stone: %w", baduk.ErrKoViolation)
	assert.Equal(t, "Illegal move: ko.", errorText(wrapped))
}
