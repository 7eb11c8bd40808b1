package sim

import "github.com/denismorozov/OS-Simulator/sim/trace"

// SimulationContext carries the shared run state — the time source and the
// event log — as an explicit value handed to the executor and schedulers,
// instead of ambient globals.
type SimulationContext struct {
	Clock Clock
	Log   *trace.EventLog
}

// NewSimulationContext creates a SimulationContext.
func NewSimulationContext(clock Clock, log *trace.EventLog) *SimulationContext {
	return &SimulationContext{Clock: clock, Log: log}
}
