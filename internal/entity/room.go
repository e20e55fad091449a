package entity

import (
	"math/rand"
	"sync"
)

// Seat numbers are fixed; a room never holds more than two participants.
const (
	SeatOne = 1
	SeatTwo = 2
)

// Assignments records which seat plays which color for the current game.
type Assignments struct {
	BlackPlayer int `json:"blackPlayer"`
	WhitePlayer int `json:"whitePlayer"`
}

// RandomColorAssignment flips a coin for which seat plays Black. A fresh flip
// happens every time a game starts.
func RandomColorAssignment() Assignments {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return Assignments{BlackPlayer: SeatOne, WhitePlayer: SeatTwo}
	}

	return Assignments{BlackPlayer: SeatTwo, WhitePlayer: SeatOne}
}

// Room is one match lobby. Seats map seat numbers to connection IDs owned by
// the gateway. All mutation of a room happens under its lock, so actions from
// either seat are applied in the order the coordinator receives them.
type Room struct {
	Code        string
	Seats       map[int]string
	Host        int
	Started     bool
	Game        *Game
	Assignments *Assignments
	Names       map[int]string

	mu sync.Mutex
}

// NewRoom creates a room with the given connection seated as seat 1 and host.
func NewRoom(code, connID string) *Room {
	return &Room{
		Code:  code,
		Seats: map[int]string{SeatOne: connID},
		Host:  SeatOne,
		Names: map[int]string{SeatOne: "", SeatTwo: ""},
	}
}

func (that *Room) Lock() {
	that.mu.Lock()
}

func (that *Room) Unlock() {
	that.mu.Unlock()
}

// PlayerCount returns the number of occupied seats.
func (that *Room) PlayerCount() int {
	return len(that.Seats)
}

// IsFull reports whether both seats are occupied.
func (that *Room) IsFull() bool {
	return len(that.Seats) >= 2
}

// FreeSeat returns the lowest unoccupied seat number.
func (that *Room) FreeSeat() (int, bool) {
	if _, taken := that.Seats[SeatOne]; !taken {
		return SeatOne, true
	}

	if _, taken := that.Seats[SeatTwo]; !taken {
		return SeatTwo, true
	}

	return 0, false
}

// Occupied reports whether the given seat holds a connection.
func (that *Room) Occupied(seat int) bool {
	_, taken := that.Seats[seat]
	return taken
}

// ConnIDs returns the connection IDs of all occupied seats.
func (that *Room) ConnIDs() []string {
	ids := make([]string, 0, len(that.Seats))
	for _, id := range that.Seats {
		ids = append(ids, id)
	}

	return ids
}

// Reset tears down any session; the room returns to an unstarted, sessionless
// state with its seats untouched.
func (that *Room) Reset() {
	that.Started = false
	that.Game = nil
	that.Assignments = nil
}
