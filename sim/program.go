// Defines the Program struct that models an individual program loaded by the
// simulated OS. Tracks the program's FIFO operation queue, lifecycle state,
// process id, and static running-time ranking key.

package sim

import (
	"fmt"
	"time"
)

// ProgramState represents the lifecycle state of a program.
// States only ever advance: Start → Ready → Running → Exit, with Running and
// Ready alternating under SRTF-N until the program exits.
type ProgramState int

const (
	StateStart ProgramState = iota
	StateReady
	StateRunning
	StateExit
)

func (s ProgramState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("ProgramState(%d)", int(s))
	}
}

// Program models a single program's lifecycle in the simulation.
// Each program has:
// - a FIFO queue of operations, fixed at load time, consumed from the front
// - a lifecycle state
// - a process id, assigned once on first dispatch
// - a running time, the SRTF-N ranking key, accumulated at load time
type Program struct {
	ops []Operation

	State ProgramState
	// ID is the process number announced in log lines. Zero until the
	// scheduler dispatches the program for the first time; never reassigned
	// on re-queue.
	ID int

	runningTime time.Duration
}

// NewProgram creates an empty program in the Start state.
func NewProgram() *Program {
	return &Program{State: StateStart}
}

// AddOperation appends an operation to the program's queue. Program-control
// brackets (A ops) do not count toward the running time; everything else
// contributes its full duration. Called only at load time — the operation
// order is never mutated afterwards.
func (p *Program) AddOperation(op Operation) {
	p.ops = append(p.ops, op)
	if op.Kind != OpProgramControl {
		p.runningTime += op.Duration()
	}
}

// Next pops and returns the operation at the front of the queue.
func (p *Program) Next() Operation {
	op := p.ops[0]
	p.ops = p.ops[1:]
	return op
}

// Remaining returns the number of operations not yet consumed.
func (p *Program) Remaining() int {
	return len(p.ops)
}

// Done reports whether every operation has been consumed.
func (p *Program) Done() bool {
	return len(p.ops) == 0
}

// RunningTime returns the program's total estimated burst time: the sum of
// all operation durations except the A(start)/A(end) brackets. Computed once
// at load time and immutable afterwards; SRTF-N uses it as its ranking key.
func (p *Program) RunningTime() time.Duration {
	return p.runningTime
}

// Operations returns the not-yet-consumed operations for inspection.
// The returned slice is the program's internal storage -- callers may iterate
// over it but MUST NOT append to or reorder it.
func (p *Program) Operations() []Operation {
	return p.ops
}

func (p *Program) String() string {
	return fmt.Sprintf("Program: (ID: %d, State: %s, Remaining: %d, RunningTime: %s)",
		p.ID, p.State, len(p.ops), p.runningTime)
}
