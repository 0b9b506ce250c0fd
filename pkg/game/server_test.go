// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lama2323/para/pkg/client"
	"github.com/Lama2323/para/pkg/models"
)

func TestGameServer_ReceiveRoutesToMatchQueue(t *testing.T) {
	s := NewGameServer(2)
	s.Start()

	s.Receive(models.Input{MatchID: 0, TickID: 0, Action: models.ActionMoveLeft})
	s.Receive(models.Input{MatchID: 1, TickID: 0, Action: models.ActionMoveLeft})
	s.Receive(models.Input{MatchID: 1, TickID: 1, Action: models.ActionMoveLeft})

	assert.Equal(t, int64(3), s.PendingCount())
	assert.Equal(t, 1, s.ProcessPending(0))
	assert.Equal(t, 2, s.ProcessPending(1))
	assert.Equal(t, int64(3), s.ProcessedCount())
	assert.True(t, s.IsAllProcessed())
}

func TestGameServer_DropsOutOfRangeInputs(t *testing.T) {
	tests := []struct {
		name    string
		matchID int
	}{
		{name: "negative", matchID: -1},
		{name: "beyond last match", matchID: 2},
		{name: "far out", matchID: 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGameServer(2)
			s.Start()

			s.Receive(models.Input{MatchID: tt.matchID, TickID: 0, Action: models.ActionMoveUp})

			if s.PendingCount() != 0 {
				t.Errorf("PendingCount() = %d, want 0", s.PendingCount())
			}
		})
	}
}

func TestGameServer_ProcessPendingSwapsQueue(t *testing.T) {
	s := NewGameServer(1)
	s.Start()

	for tick := 0; tick < 10; tick++ {
		s.Receive(models.Input{MatchID: 0, TickID: tick, Action: models.ActionMoveDown})
	}

	// First drain takes the whole batch, a second call gets an empty swap.
	assert.Equal(t, 10, s.ProcessPending(0))
	assert.Equal(t, 0, s.ProcessPending(0))
	assert.Equal(t, 0, s.ProcessPending(-1))
	assert.Equal(t, 0, s.ProcessPending(1))
}

func TestGameServer_SequentialRunProcessesEveryInRangeInput(t *testing.T) {
	const (
		numMatches      = 2
		numClients      = 4
		inputsPerClient = 50
	)
	s := NewGameServer(numMatches)
	s.Start()

	manager := client.NewManager(numClients, numMatches, inputsPerClient)
	s.ReceiveMany(manager.AllInputs())

	// A stray out-of-range input must not be counted.
	s.Receive(models.Input{MatchID: numMatches + 7, TickID: 0, Action: models.ActionMoveLeft})

	s.ProcessAllSequential()

	assert.Equal(t, int64(numClients*inputsPerClient), s.ProcessedCount())
	assert.True(t, s.IsAllProcessed())
	assert.Greater(t, s.TotalRollbackCount(), int64(0))
}

func TestGameServer_ClearInputsResetsCounters(t *testing.T) {
	s := NewGameServer(1)
	s.Start()

	for tick := 0; tick < 5; tick++ {
		s.Receive(models.Input{MatchID: 0, TickID: tick, Action: models.ActionMoveUp})
	}
	s.ProcessPending(0)
	s.Receive(models.Input{MatchID: 0, TickID: 5, Action: models.ActionMoveUp})

	s.ClearInputs()

	assert.Equal(t, int64(0), s.ProcessedCount())
	assert.Equal(t, int64(0), s.PendingCount())
	assert.Equal(t, 0, s.ProcessPending(0))
}

func TestGameServer_MatchAccessor(t *testing.T) {
	s := NewGameServer(3)

	assert.NotNil(t, s.Match(0))
	assert.Equal(t, 2, s.Match(2).ID())
	assert.Nil(t, s.Match(-1))
	assert.Nil(t, s.Match(3))
	assert.Equal(t, 3, s.NumMatches())
}
