package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RoomCodeAlphabet avoids the easily confused characters 0, 1, I and O.
const RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomCodeLength is the number of characters in a room code.
const RoomCodeLength = 5

// GenerateRoomCode - generates a short join code for a room.
func GenerateRoomCode() (string, error) {
	code := make([]byte, RoomCodeLength)

	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(RoomCodeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}

		code[i] = RoomCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
