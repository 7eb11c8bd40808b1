package sim

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler drives one batch of admitted programs to completion, dispatching
// operations through the Executor and emitting OS-level events along the way.
// Every program's every operation executes exactly once, in-program order
// preserved.
type Scheduler interface {
	Run(programs []*Program)
}

// NewScheduler creates a Scheduler for the given scheduling code.
// FIFO runs programs to completion in admission order. SJF and SRTF-N both
// map to the shortest-remaining-time discipline: the ranking key is the
// running time computed at load and never updated, which makes the two
// policies identical here.
func NewScheduler(code string, ctx *SimulationContext) (Scheduler, error) {
	switch code {
	case SchedFIFO:
		return &FIFOScheduler{ctx: ctx, exec: NewExecutor(ctx)}, nil
	case SchedSJF, SchedSRTF:
		return &SRTFScheduler{ctx: ctx, exec: NewExecutor(ctx)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheduler, code)
	}
}

// FIFOScheduler dispatches programs strictly in admission order, draining
// each one completely before considering the next.
type FIFOScheduler struct {
	ctx  *SimulationContext
	exec *Executor
}

func (s *FIFOScheduler) Run(programs []*Program) {
	s.ctx.Log.Record("OS: preparing all processes")
	for _, p := range programs {
		p.State = StateReady
	}

	counter := 0
	for _, p := range programs {
		s.ctx.Log.Record("OS: selecting next process")
		counter++
		p.ID = counter
		p.State = StateRunning
		logrus.Debugf("FIFO: dispatching process %d (%s remaining)", p.ID, p.RunningTime())

		for !p.Done() {
			s.exec.Dispatch(p)
		}
		p.State = StateExit
	}
}

// srtfEntry pairs a program with its immutable ranking key. The key lives in
// the heap entry, not the program, so re-insertion after a step is an
// explicit, auditable move rather than a mutation under the heap.
type srtfEntry struct {
	program *Program
	key     time.Duration
	seq     int // admission index, breaks ties deterministically
}

// srtfQueue implements heap.Interface ordered ascending by running time.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type srtfQueue []*srtfEntry

func (q srtfQueue) Len() int { return len(q) }
func (q srtfQueue) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}
	return q[i].seq < q[j].seq
}
func (q srtfQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *srtfQueue) Push(x any) {
	*q = append(*q, x.(*srtfEntry))
}

func (q *srtfQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// SRTFScheduler implements the non-preemptive shortest-remaining-time
// discipline: pop the program with the smallest running time, execute one
// operation, then re-insert it unless it finished.
//
// The ranking key is the total running time computed at load and never
// decayed as operations complete, so re-insertion does not re-rank by work
// left — an already-started program keeps winning every pop until it exits.
// The observable effect is whole-program shortest-job-first order.
type SRTFScheduler struct {
	ctx  *SimulationContext
	exec *Executor
}

func (s *SRTFScheduler) Run(programs []*Program) {
	s.ctx.Log.Record("OS: preparing all processes")
	queue := make(srtfQueue, 0, len(programs))
	for i, p := range programs {
		p.State = StateReady
		queue = append(queue, &srtfEntry{program: p, key: p.RunningTime(), seq: i})
	}
	heap.Init(&queue)

	counter := 0
	for queue.Len() > 0 {
		s.ctx.Log.Record("OS: selecting next process")
		entry := heap.Pop(&queue).(*srtfEntry)
		p := entry.program

		// First dispatch assigns the process number; later pops keep it.
		if p.ID == 0 {
			counter++
			p.ID = counter
		}

		p.State = StateRunning
		logrus.Debugf("SRTF-N: dispatching process %d (key %s)", p.ID, entry.key)
		s.exec.Dispatch(p)

		if p.Done() {
			p.State = StateExit
		} else {
			p.State = StateReady
			heap.Push(&queue, entry)
		}
	}
}
