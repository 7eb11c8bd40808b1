// Package sim provides the core scheduling and operation-timing engine of the
// OS simulator.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - operation.go: the Operation model (S/A/P/I/O kinds) and its timed duration
//   - program.go: Program lifecycle (Start → Ready → Running → Exit) and its
//     FIFO operation queue
//   - scheduler.go: the two scheduling disciplines (FIFO run-to-completion,
//     SRTF-N priority heap) driving the Executor
//
// # Architecture
//
// The sim package holds the engine; collaborators live elsewhere:
//   - cmd/: CLI, config-file and meta-data-file grammars (they build Config
//     and Program values and hand them to NewSimulator)
//   - sim/trace/: the timestamped event log the run produces
//
// Time is abstracted behind the Clock interface: WallClock sleeps for real in
// production, VirtualClock advances instantly in tests. Everything else that
// the executor and schedulers share travels in a SimulationContext value.
package sim
