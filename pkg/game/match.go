// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package game holds the per-match simulation state machine and the sharded
// server that routes client inputs into it.
package game

import (
	"sync"
	"sync/atomic"

	"github.com/elliotchance/pie/v2"

	"github.com/Lama2323/para/pkg/constants"
	"github.com/Lama2323/para/pkg/mathutil"
	"github.com/Lama2323/para/pkg/models"
)

// Match is a single two-player simulation instance. It owns its state, a
// bounded ring of snapshots for rollback, and the input history in arrival
// order. Everything is guarded by one mutex; ProcessInput holds it for the
// whole call so inputs for one match are fully serialised.
type Match struct {
	mu           sync.Mutex
	state        models.MatchState
	snapshots    []models.Snapshot
	inputHistory []models.Input

	rollbackCount atomic.Int64

	// lastSnapshotTick starts at -RollbackInterval so the first processed
	// input crosses a snapshot boundary immediately.
	lastSnapshotTick int
}

func NewMatch(matchID int) *Match {
	return &Match{
		state:            models.NewMatchState(matchID),
		lastSnapshotTick: -constants.RollbackInterval,
	}
}

// Start marks the match running at tick zero and captures the initial
// snapshot.
func (m *Match) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.IsRunning = true
	m.state.CurrentTick = 0
	m.saveSnapshotLocked()
}

// ProcessInput applies one client input to the match.
//
// A late input (tick below the current one) triggers a rollback: the newest
// snapshot at or before the input's tick is restored and the history suffix
// is re-applied in arrival order. Every RollbackInterval ticks a snapshot is
// captured, the ring capped, and a demonstrative rollback two ticks back is
// executed; the latter exists to generate re-simulation load, not to correct
// anything.
func (m *Match) ProcessInput(input models.Input) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsRunning {
		return
	}

	// Record first: the history entry must exist before the input's effect
	// becomes observable.
	m.inputHistory = append(m.inputHistory, input)

	if input.TickID < m.state.CurrentTick {
		m.rollbackCount.Add(1)
		m.replayLocked(input.TickID, false, 0)
	} else {
		m.applyLocked(input)
	}

	m.state.CurrentTick++

	if m.state.CurrentTick-m.lastSnapshotTick >= constants.RollbackInterval {
		m.saveSnapshotLocked()
		m.lastSnapshotTick = m.state.CurrentTick

		target := mathutil.Max(0, m.state.CurrentTick-2)
		m.rollbackCount.Add(1)
		m.replayLocked(target, true, m.state.CurrentTick)
	}
}

// Rollback restores the newest snapshot at or before toTick and re-applies
// the history up to the current tick in arrival order.
func (m *Match) Rollback(toTick int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.snapshots) == 0 {
		return
	}
	m.rollbackCount.Add(1)
	m.replayLocked(toTick, true, m.state.CurrentTick)
}

// replayLocked restores the best snapshot for toTick and re-applies history
// entries in arrival order. When bounded, only entries with tick at most
// upper are re-applied. The current tick survives the restore: rollback
// rewrites player state, it never rewinds logical time.
func (m *Match) replayLocked(toTick int, bounded bool, upper int) {
	snapshot := m.findSnapshotLocked(toTick)
	if snapshot == nil {
		return
	}

	currentTick := m.state.CurrentTick
	m.state = snapshot.State.Copy()
	m.state.CurrentTick = currentTick

	for _, hist := range m.inputHistory {
		if hist.TickID < snapshot.TickID {
			continue
		}
		if bounded && hist.TickID > upper {
			continue
		}
		m.applyLocked(hist)
	}
}

func (m *Match) applyLocked(input models.Input) {
	m.state.Players[input.PlayerID%2].Move(input.Action)
}

// saveSnapshotLocked appends a snapshot of the current state and caps the
// ring. After evicting the eldest snapshot the history entries that can
// never be replayed again are pruned.
func (m *Match) saveSnapshotLocked() {
	m.snapshots = append(m.snapshots, models.NewSnapshot(m.state.CurrentTick, m.state))

	if len(m.snapshots) > constants.MaxSnapshots {
		m.snapshots = m.snapshots[1:]

		eldestTick := m.snapshots[0].TickID
		m.inputHistory = pie.Filter(m.inputHistory, func(input models.Input) bool {
			return input.TickID >= eldestTick
		})
	}
}

// findSnapshotLocked returns the newest snapshot with TickID at most tick,
// or the eldest snapshot when none qualifies. Nil only when the ring is
// empty.
func (m *Match) findSnapshotLocked(tick int) *models.Snapshot {
	if len(m.snapshots) == 0 {
		return nil
	}

	var best *models.Snapshot
	for i := range m.snapshots {
		if m.snapshots[i].TickID <= tick {
			best = &m.snapshots[i]
		} else {
			break
		}
	}
	if best == nil {
		best = &m.snapshots[0]
	}
	return best
}

// ID returns the match id.
func (m *Match) ID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.MatchID
}

// CurrentTick returns the tick the match is on.
func (m *Match) CurrentTick() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.CurrentTick
}

// RollbackCount returns how many rollbacks this match has executed.
func (m *Match) RollbackCount() int64 {
	return m.rollbackCount.Load()
}

// IsRunning reports whether the match accepts inputs.
func (m *Match) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.IsRunning
}

// State returns a deep copy of the current match state.
func (m *Match) State() models.MatchState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Copy()
}

// Snapshots returns a copy of the snapshot ring, eldest first.
func (m *Match) Snapshots() []models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Snapshot, len(m.snapshots))
	copy(out, m.snapshots)
	return out
}

// History returns a copy of the retained input history in arrival order.
func (m *Match) History() []models.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Input, len(m.inputHistory))
	copy(out, m.inputHistory)
	return out
}
