package websocket

import (
	"github.com/rocketscienceinc/goban-backend/internal/baduk"
	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

// Inbound message kinds.
const (
	actionCreateRoom = "create_room"
	actionJoinRoom   = "join_room"
	actionStartGame  = "start_game"
	actionMove       = "move"
	actionPass       = "pass"
	actionUndo       = "undo"
	actionSetName    = "set_name"
)

// Outbound message kinds.
const (
	typeRoomCreated = "room_created"
	typeRoomJoined  = "room_joined"
	typeRoomUpdate  = "room_update"
	typeHostChanged = "host_changed"
	typeGameStarted = "game_started"
	typeStateUpdate = "state_update"
	typeGameReset   = "game_reset"
	typeError       = "error"
)

// Request is the flat inbound message envelope. Row and Col are pointers so
// that a missing coordinate can be told apart from zero.
type Request struct {
	Type string `json:"type"`
	Code string `json:"code,omitempty"`
	Size int    `json:"size,omitempty"`
	Row  *int   `json:"row,omitempty"`
	Col  *int   `json:"col,omitempty"`
	Name string `json:"name,omitempty"`
}

// RoomMessage answers a successful create_room or join_room.
type RoomMessage struct {
	Type         string         `json:"type"`
	Code         string         `json:"code"`
	PlayerNumber int            `json:"playerNumber"`
	Host         int            `json:"host"`
	Players      int            `json:"players"`
	Names        map[int]string `json:"names"`
}

// RoomUpdateMessage broadcasts occupancy or name changes to every seat.
type RoomUpdateMessage struct {
	Type    string         `json:"type"`
	Players int            `json:"players"`
	Host    int            `json:"host"`
	Names   map[int]string `json:"names"`
	Note    string         `json:"note,omitempty"`
}

// HostChangedMessage announces host re-election after a disconnect.
type HostChangedMessage struct {
	Type string `json:"type"`
	Host int    `json:"host"`
}

// GameMessage broadcasts the session state; it serves both game_started and
// state_update. Score is present only when the game just ended.
type GameMessage struct {
	Type        string             `json:"type"`
	Assignments entity.Assignments `json:"assignments"`
	Names       map[int]string     `json:"names"`
	State       *entity.Game       `json:"state"`
	Score       *baduk.ScoreResult `json:"score,omitempty"`
	Note        string             `json:"note,omitempty"`
}

// GameResetMessage tells a surviving seat that the session was torn down.
type GameResetMessage struct {
	Type string `json:"type"`
}

// ErrorMessage is a targeted reply to the offending connection only.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
