// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tasks

import (
	"sync/atomic"
	"testing"

	"github.com/onsi/gomega"

	"github.com/Lama2323/para/pkg/client"
	"github.com/Lama2323/para/pkg/game"
	"github.com/Lama2323/para/pkg/models"
	"github.com/Lama2323/para/pkg/scheduler"
	"github.com/Lama2323/para/pkg/testsetup"
)

// runPipeline wires the producer/consumer tasks the way the benchmark does:
// one ClientTask per client, one MatchTask per match, all self-resubmitting.
func runPipeline(numMatches, numClients, inputsPerClient, batchSize, numWorkers int) (*game.GameServer, *scheduler.ThreadPool, int64) {
	server := game.NewGameServer(numMatches)
	server.Start()
	manager := client.NewManager(numClients, numMatches, inputsPerClient)

	pool := scheduler.NewThreadPool(numWorkers)
	var clientsFinished atomic.Int64
	batches := models.NewPool()

	for _, c := range manager.Clients() {
		task := &ClientTask{
			Client:          c,
			Server:          server,
			Pool:            pool,
			ClientsFinished: &clientsFinished,
			Batches:         batches,
			BatchSize:       batchSize,
		}
		pool.Submit(task.Run)
	}
	for matchID := 0; matchID < numMatches; matchID++ {
		task := &MatchTask{
			MatchID:         matchID,
			Server:          server,
			Pool:            pool,
			ClientsFinished: &clientsFinished,
			NumClients:      numClients,
		}
		pool.Submit(task.Run)
	}
	pool.WaitAll()

	return server, pool, clientsFinished.Load()
}

func TestPipeline_ProcessesEveryInput(t *testing.T) {
	g := testsetup.WithGomega(t)

	server, pool, clientsFinished := runPipeline(2, 4, 200, 10, 4)
	defer pool.Shutdown()

	g.Expect(clientsFinished).To(gomega.Equal(int64(4)))
	g.Expect(server.ProcessedCount()).To(gomega.Equal(int64(800)))
	g.Expect(server.PendingCount()).To(gomega.Equal(int64(0)))
}

func TestPipeline_SingleWorkerStillDrains(t *testing.T) {
	g := testsetup.WithGomega(t)

	server, pool, clientsFinished := runPipeline(2, 2, 100, 7, 1)
	defer pool.Shutdown()

	g.Expect(clientsFinished).To(gomega.Equal(int64(2)))
	g.Expect(server.ProcessedCount()).To(gomega.Equal(int64(200)))
	g.Expect(server.IsAllProcessed()).To(gomega.BeTrue())
}

func TestPipeline_MatchesAdvance(t *testing.T) {
	g := testsetup.WithGomega(t)

	server, pool, _ := runPipeline(3, 6, 150, 25, 3)
	defer pool.Shutdown()

	for matchID := 0; matchID < server.NumMatches(); matchID++ {
		match := server.Match(matchID)
		g.Expect(match.CurrentTick()).To(gomega.BeNumerically(">", 0))
		g.Expect(match.RollbackCount()).To(gomega.BeNumerically(">", int64(0)))
	}
}
