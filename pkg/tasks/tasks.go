// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package tasks contains the self-resubmitting task bodies that drive the
// pipelined benchmark: one producer per client, one consumer per match. Both
// hold plain back-references only; the pool, server, and counters outlive
// every task by construction.
package tasks

import (
	"sync/atomic"

	"github.com/Lama2323/para/pkg/client"
	"github.com/Lama2323/para/pkg/game"
	"github.com/Lama2323/para/pkg/models"
	"github.com/Lama2323/para/pkg/scheduler"
)

// ClientTask generates one batch of inputs, pushes it to the server, and
// resubmits itself until its client is exhausted.
type ClientTask struct {
	Client          *client.Client
	Server          *game.GameServer
	Pool            *scheduler.ThreadPool
	ClientsFinished *atomic.Int64
	Batches         *models.Pool
	BatchSize       int
}

func (t *ClientTask) Run() {
	buf := t.Batches.InputBatches.Get()
	buf = t.Client.AppendBatch(buf[:0], t.BatchSize)
	if len(buf) > 0 {
		t.Server.ReceiveMany(buf)
	}
	t.Batches.InputBatches.Put(buf)

	if !t.Client.IsFinished() {
		t.Pool.Submit(t.Run)
	} else {
		t.ClientsFinished.Add(1)
	}
}

// MatchTask drains one match's queue and resubmits itself until every
// producer has finished and nothing is pending. The next copy is submitted
// only at the tail of the current run, so at most one consumer per match is
// ever in flight.
type MatchTask struct {
	MatchID         int
	Server          *game.GameServer
	Pool            *scheduler.ThreadPool
	ClientsFinished *atomic.Int64
	NumClients      int
}

func (t *MatchTask) Run() {
	t.Server.ProcessPending(t.MatchID)

	// The global pending count is conservative: it can only delay
	// termination, never cause an early one.
	allClientsDone := t.ClientsFinished.Load() == int64(t.NumClients)
	queueEmpty := t.Server.PendingCount() == 0

	if !allClientsDone || !queueEmpty {
		t.Pool.Submit(t.Run)
	}
}
