// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package client

import (
	"reflect"
	"testing"

	"github.com/Lama2323/para/pkg/models"
)

func TestClient_DeterministicForSameSeed(t *testing.T) {
	a := NewClient(7, 3, 1, 100)
	b := NewClient(7, 3, 1, 100)

	if !reflect.DeepEqual(a.GenerateBatch(100), b.GenerateBatch(100)) {
		t.Error("two clients with the same id generated different sequences")
	}
}

func TestClient_BatchTotalityOverAnyPartition(t *testing.T) {
	tests := []struct {
		name      string
		numInputs int
		batchSize int
	}{
		{name: "exact multiple", numInputs: 100, batchSize: 10},
		{name: "ragged tail", numInputs: 100, batchSize: 7},
		{name: "single batch", numInputs: 100, batchSize: 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(0, 0, 0, tt.numInputs)

			var all []models.Input
			for !c.IsFinished() {
				batch := c.GenerateBatch(tt.batchSize)
				if len(batch) == 0 {
					t.Fatal("GenerateBatch returned nothing before exhaustion")
				}
				all = append(all, batch...)
			}

			if len(all) != tt.numInputs {
				t.Fatalf("generated %d inputs, want %d", len(all), tt.numInputs)
			}
			for i, input := range all {
				if input.TickID != i {
					t.Fatalf("input %d has tick %d, want %d", i, input.TickID, i)
				}
			}
			if got := c.GenerateBatch(tt.batchSize); len(got) != 0 {
				t.Errorf("exhausted client produced %d more inputs", len(got))
			}
		})
	}
}

func TestClient_InputsCarryClientIdentity(t *testing.T) {
	c := NewClient(9, 4, 1, 10)

	for _, input := range c.GenerateBatch(10) {
		if input.MatchID != 4 || input.PlayerID != 1 {
			t.Fatalf("input carries (%d,%d), want (4,1)", input.MatchID, input.PlayerID)
		}
		if input.Action >= models.NumActions {
			t.Fatalf("action %d out of range", input.Action)
		}
	}
}

func TestManager_ClientLayout(t *testing.T) {
	tests := []struct {
		name       string
		clientID   int
		numMatches int
		wantMatch  int
		wantPlayer int
	}{
		{name: "first client", clientID: 0, numMatches: 20, wantMatch: 0, wantPlayer: 0},
		{name: "second player same match", clientID: 1, numMatches: 20, wantMatch: 0, wantPlayer: 1},
		{name: "next match", clientID: 2, numMatches: 20, wantMatch: 1, wantPlayer: 0},
		{name: "wraps around matches", clientID: 10, numMatches: 4, wantMatch: 1, wantPlayer: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.clientID+1, tt.numMatches, 10)
			c := m.Client(tt.clientID)
			if c.MatchID() != tt.wantMatch || c.PlayerID() != tt.wantPlayer {
				t.Errorf("client %d -> (%d,%d), want (%d,%d)",
					tt.clientID, c.MatchID(), c.PlayerID(), tt.wantMatch, tt.wantPlayer)
			}
		})
	}
}

func TestManager_AllInputsMatchesTotal(t *testing.T) {
	m := NewManager(6, 3, 25)

	if m.TotalInputs() != 150 {
		t.Fatalf("TotalInputs() = %d, want 150", m.TotalInputs())
	}
	if got := len(m.AllInputs()); got != 150 {
		t.Fatalf("len(AllInputs()) = %d, want 150", got)
	}
	for _, c := range m.Clients() {
		if !c.IsFinished() {
			t.Errorf("client %d not exhausted after AllInputs", c.ClientID())
		}
	}
}

func TestManager_ClientOutOfRange(t *testing.T) {
	m := NewManager(2, 1, 10)

	if m.Client(-1) != nil || m.Client(2) != nil {
		t.Error("out-of-range client index should return nil")
	}
}
