// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

import "time"

const (
	ArenaWidth  = 20
	ArenaHeight = 20

	// RollbackInterval is the snapshot cadence in ticks. Every boundary also
	// triggers the demonstrative rollback two ticks back.
	RollbackInterval = 5

	// MaxSnapshots caps the per-match snapshot ring. The eldest entry is
	// evicted first and the input history pruned against the new eldest.
	MaxSnapshots = 10
)

const (
	NumMatches      = 20
	NumClients      = 40
	InputsPerClient = 10000
	TotalInputs     = NumClients * InputsPerClient

	// BatchSize is the producer batch in pipelined mode. Small enough to force
	// frequent task switching, large enough to amortize queue locking.
	BatchSize = 50
)

const (
	// WorkerParkTimeout bounds the idle wait so a submit racing the
	// empty-probe cannot strand a worker on a missed notification.
	WorkerParkTimeout = 100 * time.Microsecond
)
