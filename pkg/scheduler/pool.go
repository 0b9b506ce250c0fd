// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package scheduler

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Lama2323/para/pkg/common"
	"github.com/Lama2323/para/pkg/constants"
)

// Task is one unit of scheduled work. A task body may call Submit on the
// pool that is running it before returning; the pending-task counter is
// incremented by the new submit before the running task's own decrement, so
// WaitAll cannot observe a false quiescence mid-pipeline.
type Task func()

// ThreadPool owns a fixed set of worker goroutines, one work-stealing deque
// per worker. Submitted tasks are spread round-robin across the deques; a
// worker that runs out of local work steals from random victims before
// parking on a bounded wait.
type ThreadPool struct {
	numWorkers int
	queues     []*WorkStealingQueue[Task]

	running      atomic.Bool
	nextQueue    atomic.Uint64
	pendingTasks atomic.Int64
	stealCount   atomic.Uint64

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup

	waitMu   sync.Mutex
	waitCond *sync.Cond
}

// NewThreadPool starts numWorkers workers. Zero or negative falls back to
// the hardware concurrency, never less than one worker.
func NewThreadPool(numWorkers int) *ThreadPool {
	if numWorkers <= 0 {
		numWorkers = common.HardwareConcurrency()
	}

	p := &ThreadPool{
		numWorkers: numWorkers,
		queues:     make([]*WorkStealingQueue[Task], numWorkers),
		wake:       make(chan struct{}, numWorkers),
		done:       make(chan struct{}),
	}
	p.waitCond = sync.NewCond(&p.waitMu)
	p.running.Store(true)

	for i := 0; i < numWorkers; i++ {
		p.queues[i] = NewWorkStealingQueue[Task]()
	}
	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.worker(i)
	}
	return p
}

// Submit enqueues a task on the next deque in round-robin order and wakes a
// parked worker. No-op once the pool is shutting down.
func (p *ThreadPool) Submit(task Task) {
	if !p.running.Load() {
		return
	}

	p.pendingTasks.Add(1)
	idx := int((p.nextQueue.Add(1) - 1) % uint64(p.numWorkers))
	p.queues[idx].PushBack(task)
	p.notifyOne()
}

// SubmitTo enqueues a task on a specific worker's deque. Out-of-range worker
// ids are ignored.
func (p *ThreadPool) SubmitTo(workerID int, task Task) {
	if !p.running.Load() || workerID < 0 || workerID >= p.numWorkers {
		return
	}

	p.pendingTasks.Add(1)
	p.queues[workerID].PushBack(task)
	p.notifyOne()
}

// WaitAll blocks the caller until every submitted task has completed. It is
// a liveness guard only: with self-resubmitting tasks the real completeness
// witness is the tasks' own termination predicate.
func (p *ThreadPool) WaitAll() {
	p.waitMu.Lock()
	for p.pendingTasks.Load() != 0 {
		p.waitCond.Wait()
	}
	p.waitMu.Unlock()
}

// Shutdown stops the workers and joins them. Idempotent; tasks still queued
// are abandoned.
func (p *ThreadPool) Shutdown() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// NumWorkers returns the worker count.
func (p *ThreadPool) NumWorkers() int {
	return p.numWorkers
}

// StealCount returns the number of successful steals so far. Monotone,
// advisory, reported as a benchmark statistic.
func (p *ThreadPool) StealCount() uint64 {
	return p.stealCount.Load()
}

func (p *ThreadPool) notifyOne() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *ThreadPool) worker(workerID int) {
	defer p.wg.Done()

	// Per-worker RNG for victim selection, seeded by the worker id.
	rng := rand.New(rand.NewSource(int64(workerID)))
	timer := time.NewTimer(constants.WorkerParkTimeout)
	defer timer.Stop()

	for p.running.Load() {
		task, found := p.queues[workerID].TryPopBack()

		if !found {
			for attempts := 0; attempts < p.numWorkers*2; attempts++ {
				victim := rng.Intn(p.numWorkers)
				if victim == workerID {
					continue
				}
				if stolen, ok := p.queues[victim].TryPopFront(); ok {
					task = stolen
					found = true
					p.stealCount.Add(1)
					break
				}
			}
		}

		if found {
			task()

			if p.pendingTasks.Add(-1) == 0 {
				p.waitMu.Lock()
				p.waitCond.Broadcast()
				p.waitMu.Unlock()
			}
			continue
		}

		// Bounded park. The timeout self-heals the race where a submit lands
		// between the empty probe and the wait.
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(constants.WorkerParkTimeout)
		select {
		case <-p.wake:
		case <-p.done:
		case <-timer.C:
		}
	}
}
