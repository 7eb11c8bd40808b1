package sim

import (
	"fmt"
	"time"

	"github.com/denismorozov/OS-Simulator/sim/trace"
)

// Version is the simulator version a configuration file must declare.
// A mismatch is a fatal config error.
const Version = 3.0

// Scheduling codes accepted by the config grammar. SJF is served by the
// SRTF-N discipline: with a ranking key fixed at load time the two are the
// same policy.
const (
	SchedFIFO = "FIFO"
	SchedSJF  = "SJF"
	SchedSRTF = "SRTF-N"
)

// CycleTimes is the per-device duration of one abstract cycle.
type CycleTimes struct {
	Processor time.Duration
	Monitor   time.Duration
	HardDrive time.Duration
	Printer   time.Duration
	Keyboard  time.Duration
}

// Resolve maps an operation's kind and description to its configured cycle
// time. Program-control and OS-control operations are administrative and
// resolve to zero. Any combination outside the table is a fatal
// ErrUnrecognizedOperation.
//
// Resolution happens once, at load time; the result is cached on the
// Operation and never recomputed.
func (ct CycleTimes) Resolve(op Operation) (time.Duration, error) {
	switch op.Kind {
	case OpProcessing:
		return ct.Processor, nil
	case OpInput, OpOutput:
		switch op.Description {
		case "hard drive":
			return ct.HardDrive, nil
		case "keyboard":
			return ct.Keyboard, nil
		case "monitor":
			return ct.Monitor, nil
		case "printer":
			return ct.Printer, nil
		default:
			return 0, fmt.Errorf("%w: no %s device named %q", ErrUnrecognizedOperation, op.Kind, op.Description)
		}
	case OpProgramControl, OpOSControl:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: type %q", ErrUnrecognizedOperation, op.Kind)
	}
}

// Config holds everything the engine needs for one run. Built by the config
// loaders in cmd/ from either the classic colon-delimited grammar or its YAML
// rendition.
type Config struct {
	Version        float64
	MetaDataPath   string
	SchedulingCode string // FIFO, SJF, or SRTF-N
	Quantum        int    // parsed for format compatibility, unused by both disciplines
	CycleTimes     CycleTimes
	LogDestination trace.Destination
	LogFilePath    string
}

// ValidSchedulingCode reports whether code names a supported discipline.
func ValidSchedulingCode(code string) bool {
	switch code {
	case SchedFIFO, SchedSJF, SchedSRTF:
		return true
	default:
		return false
	}
}
