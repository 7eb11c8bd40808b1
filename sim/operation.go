// Defines the Operation struct that models a single unit of simulated work,
// and the OpKind sum type it is tagged with.

package sim

import (
	"fmt"
	"time"
)

// OpKind identifies what an operation does. The meta-data grammar encodes
// kinds as single letters: S (OS control), A (program control), P (processing),
// I (input), O (output).
type OpKind int

const (
	OpOSControl OpKind = iota
	OpProgramControl
	OpProcessing
	OpInput
	OpOutput
)

// opKindLetters maps meta-data letters to kinds.
var opKindLetters = map[byte]OpKind{
	'S': OpOSControl,
	'A': OpProgramControl,
	'P': OpProcessing,
	'I': OpInput,
	'O': OpOutput,
}

// ParseOpKind converts a meta-data letter code into an OpKind.
func ParseOpKind(c byte) (OpKind, error) {
	kind, ok := opKindLetters[c]
	if !ok {
		return 0, fmt.Errorf("%w: unknown type letter %q", ErrUnrecognizedOperation, string(c))
	}
	return kind, nil
}

func (k OpKind) String() string {
	switch k {
	case OpOSControl:
		return "S"
	case OpProgramControl:
		return "A"
	case OpProcessing:
		return "P"
	case OpInput:
		return "I"
	case OpOutput:
		return "O"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Operation models one atomic unit of simulated work.
// CycleTime is resolved from the config table once at load time and cached
// here; the scheduler and executor never re-resolve it.
type Operation struct {
	Kind        OpKind        // S, A, P, I, or O
	Description string        // start, end, run, hard drive, keyboard, monitor, or printer
	Cycles      int           // number of abstract cycles consumed
	CycleTime   time.Duration // duration of one cycle, per config
}

// Duration returns the total simulated time the operation consumes.
func (op Operation) Duration() time.Duration {
	return time.Duration(op.Cycles) * op.CycleTime
}

func (op Operation) String() string {
	return fmt.Sprintf("%s(%s)%d", op.Kind, op.Description, op.Cycles)
}
