// The operation executor: consumes one program's operations, emitting event
// log lines around each timed action.

package sim

import "github.com/sirupsen/logrus"

// Executor runs individual operations. Processing blocks the driving flow for
// the operation's duration; input/output does the same blocking on its own
// goroutine, which the driving flow joins before moving on — I/O latency is
// isolated on its own execution context, but scheduling decisions stay
// serialized.
type Executor struct {
	ctx *SimulationContext
}

// NewExecutor creates an Executor bound to the run's clock and event log.
func NewExecutor(ctx *SimulationContext) *Executor {
	return &Executor{ctx: ctx}
}

// Dispatch advances the program by one step. A step consumes the A(start)
// announcement together with the first real operation, then exactly one
// operation per call after that. When only the terminal A(end) remains it is
// popped untimed and the process removal is announced.
func (e *Executor) Dispatch(p *Program) {
	id := p.ID
	op := p.Next()

	// A program's first step announces the process before running anything.
	if op.Kind == OpProgramControl && op.Description == "start" {
		e.ctx.Log.Recordf("OS: starting process %d", id)
		if p.Remaining() == 1 {
			// Nothing between the brackets: remove the process right away.
			p.Next()
			e.ctx.Log.Recordf("OS: removing process %d", id)
			return
		}
		op = p.Next()
	}

	switch op.Kind {
	case OpProcessing:
		e.ctx.Log.Recordf("Process %d: start processing action", id)
		e.ctx.Clock.Advance(op.Duration())
		e.ctx.Log.Recordf("Process %d: end processing action", id)

	case OpInput, OpOutput:
		// One goroutine per I/O operation, joined before the next decision.
		done := make(chan struct{})
		go func() {
			defer close(done)
			e.runIO(op, id)
		}()
		<-done

	default:
		// Control operations other than the brackets consume no time; the
		// resolver rejects anything truly unknown at load.
		logrus.Debugf("skipping untimed operation %s for process %d", op, id)
	}

	// The single remaining operation must be the A(end) bracket.
	if p.Remaining() == 1 {
		p.Next()
		e.ctx.Log.Recordf("OS: removing process %d", id)
	}
}

// runIO performs one input/output operation. Always called on its own
// goroutine.
func (e *Executor) runIO(op Operation, id int) {
	var action string
	switch op.Description {
	case "hard drive":
		if op.Kind == OpInput {
			action = "hard drive input"
		} else {
			action = "hard drive output"
		}
	case "keyboard":
		action = "keyboard input"
	case "monitor":
		action = "monitor output"
	case "printer":
		action = "printer output"
	default:
		// Unreachable for loaded programs; the resolver vets descriptions.
		action = op.Description
	}

	e.ctx.Log.Recordf("Process %d: start %s", id, action)
	e.ctx.Clock.Advance(op.Duration())
	e.ctx.Log.Recordf("Process %d: end %s", id, action)
}
