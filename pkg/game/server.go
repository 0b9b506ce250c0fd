// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package game

import (
	"sync"
	"sync/atomic"

	"github.com/Lama2323/para/pkg/constants"
	"github.com/Lama2323/para/pkg/models"
)

// inputQueue is one shard: a plain FIFO guarded by its own mutex. Producers
// hold the lock only to append, the consumer only to swap the buffer out.
type inputQueue struct {
	mu    sync.Mutex
	items []models.Input
}

// GameServer owns the matches and one input queue per match. All inputs for
// a match are serialised through that match's mutex; different matches
// proceed in parallel.
type GameServer struct {
	matches []*Match
	queues  []*inputQueue

	processedCount atomic.Int64
	pendingInputs  atomic.Int64

	numMatches int
}

// NewGameServer creates numMatches stopped matches with empty queues. Zero
// or negative falls back to the default match count.
func NewGameServer(numMatches int) *GameServer {
	if numMatches <= 0 {
		numMatches = constants.NumMatches
	}

	s := &GameServer{
		matches:    make([]*Match, numMatches),
		queues:     make([]*inputQueue, numMatches),
		numMatches: numMatches,
	}
	for i := 0; i < numMatches; i++ {
		s.matches[i] = NewMatch(i)
		s.queues[i] = &inputQueue{}
	}
	return s
}

// Start starts every match.
func (s *GameServer) Start() {
	for _, match := range s.matches {
		match.Start()
	}
}

// Receive appends one input to its match's queue. Inputs referencing an
// unknown match are silently dropped.
func (s *GameServer) Receive(input models.Input) {
	if input.MatchID < 0 || input.MatchID >= s.numMatches {
		return
	}

	q := s.queues[input.MatchID]
	q.mu.Lock()
	q.items = append(q.items, input)
	q.mu.Unlock()
	s.pendingInputs.Add(1)
}

// ReceiveMany appends a batch of inputs. No transactional semantics: each
// input is routed independently.
func (s *GameServer) ReceiveMany(inputs []models.Input) {
	for _, input := range inputs {
		s.Receive(input)
	}
}

// ProcessPending drains the named match's queue into the match and returns
// how many inputs it processed. The queue is swapped out under its own lock
// and drained after release, so producers are never blocked on the match
// mutex. Concurrent calls for the same match are safe: one gets the batch,
// the other an empty swap.
func (s *GameServer) ProcessPending(matchID int) int {
	if matchID < 0 || matchID >= s.numMatches {
		return 0
	}

	q := s.queues[matchID]
	q.mu.Lock()
	batch := q.items
	q.items = nil
	q.mu.Unlock()

	if len(batch) == 0 {
		return 0
	}

	match := s.matches[matchID]
	for _, input := range batch {
		match.ProcessInput(input)
		s.processedCount.Add(1)
		s.pendingInputs.Add(-1)
	}
	return len(batch)
}

// ProcessAllSequential drains every queue on the calling goroutine, match by
// match. This is the single-threaded baseline.
func (s *GameServer) ProcessAllSequential() {
	for matchID := 0; matchID < s.numMatches; matchID++ {
		s.ProcessPending(matchID)
	}
}

// ProcessedCount returns how many inputs have been applied to matches.
func (s *GameServer) ProcessedCount() int64 {
	return s.processedCount.Load()
}

// TotalRollbackCount sums the rollback counters across all matches.
func (s *GameServer) TotalRollbackCount() int64 {
	var total int64
	for _, match := range s.matches {
		total += match.RollbackCount()
	}
	return total
}

// PendingCount returns the number of inputs received but not yet processed.
func (s *GameServer) PendingCount() int64 {
	return s.pendingInputs.Load()
}

// IsAllProcessed reports whether every received input has been drained.
func (s *GameServer) IsAllProcessed() bool {
	return s.pendingInputs.Load() == 0
}

// NumMatches returns the match count.
func (s *GameServer) NumMatches() int {
	return s.numMatches
}

// Match returns the match with the given id, or nil when out of range.
func (s *GameServer) Match(matchID int) *Match {
	if matchID < 0 || matchID >= s.numMatches {
		return nil
	}
	return s.matches[matchID]
}

// ClearInputs empties every queue and resets the processed counter so the
// server can be reused for another run.
func (s *GameServer) ClearInputs() {
	for _, q := range s.queues {
		q.mu.Lock()
		dropped := len(q.items)
		q.items = nil
		q.mu.Unlock()
		s.pendingInputs.Add(-int64(dropped))
	}
	s.processedCount.Store(0)
}
