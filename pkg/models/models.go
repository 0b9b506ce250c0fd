// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"github.com/Lama2323/para/pkg/constants"
	"github.com/Lama2323/para/pkg/mathutil"

	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"
)

// Action is one of the four movement commands a client can issue.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown

	NumActions = 4
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MOVE_LEFT"
	case ActionMoveRight:
		return "MOVE_RIGHT"
	case ActionMoveUp:
		return "MOVE_UP"
	case ActionMoveDown:
		return "MOVE_DOWN"
	default:
		return "UNKNOWN"
	}
}

// Input is a single command from a client to the server. TickID is the
// logical tick the client generated it for, which is not necessarily the
// tick the match is on when it arrives.
type Input struct {
	MatchID  int    `json:"match_id"`
	PlayerID int    `json:"player_id"`
	TickID   int    `json:"tick_id"`
	Action   Action `json:"action"`
}

// PlayerState is the position of a single player inside the arena.
type PlayerState struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// Move applies a movement command, clamping at the arena boundary.
func (p *PlayerState) Move(action Action) {
	switch action {
	case ActionMoveLeft:
		p.X = mathutil.Clamp(p.X-1, 0, constants.ArenaWidth-1)
	case ActionMoveRight:
		p.X = mathutil.Clamp(p.X+1, 0, constants.ArenaWidth-1)
	case ActionMoveUp:
		p.Y = mathutil.Clamp(p.Y-1, 0, constants.ArenaHeight-1)
	case ActionMoveDown:
		p.Y = mathutil.Clamp(p.Y+1, 0, constants.ArenaHeight-1)
	}
}

// MatchState is the full state of one match: two players and the tick the
// match is currently on.
type MatchState struct {
	MatchID     int            `json:"match_id"`
	CurrentTick int            `json:"current_tick"`
	Players     [2]PlayerState `json:"players"`
	IsRunning   bool           `json:"is_running"`
}

// NewMatchState creates a stopped match state with both players at their
// starting positions.
func NewMatchState(matchID int) MatchState {
	return MatchState{
		MatchID: matchID,
		Players: [2]PlayerState{
			{ID: 0, X: 5, Y: constants.ArenaHeight / 2},
			{ID: 1, X: 15, Y: constants.ArenaHeight / 2},
		},
	}
}

// Copy returns a deep copy of the state, safe to retain as a snapshot.
func (s MatchState) Copy() MatchState {
	copied, err := copystructure.Copy(s)
	if err != nil {
		logrus.Warn("failed copy matchState:", err)
	}
	copyState, _ := copied.(MatchState)
	return copyState
}

// Snapshot is a value copy of a match state tagged with the tick at which
// it was captured.
type Snapshot struct {
	TickID int        `json:"tick_id"`
	State  MatchState `json:"state"`
}

func NewSnapshot(tickID int, state MatchState) Snapshot {
	return Snapshot{TickID: tickID, State: state.Copy()}
}
