// Package trace implements the timestamped event log a simulation run
// produces. This package sits below sim/ — it sees only an elapsed-time
// clock and io.Writer sinks, never the engine's types.
package trace

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Clock supplies elapsed time since the simulation announced its own start.
// sim.WallClock and sim.VirtualClock both satisfy it.
type Clock interface {
	Elapsed() time.Duration
}

// EventLog appends one "<elapsed seconds> - <message>" line per event to its
// sinks. Lines are only ever appended, never truncated mid-run; there is at
// most one writer at a time so no locking is needed beyond sequential access.
type EventLog struct {
	clock Clock
	sinks []io.Writer
	file  *os.File
}

// New creates an EventLog routed per the configured destination. The log
// file, when used, is created fresh at the configured path and released by
// Close at simulation end.
func New(clock Clock, dest Destination, logFilePath string) (*EventLog, error) {
	l := &EventLog{clock: clock}
	if dest == DestScreen || dest == DestBoth || dest == "" {
		l.sinks = append(l.sinks, os.Stdout)
	}
	if dest == DestFile || dest == DestBoth {
		f, err := os.Create(logFilePath)
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", logFilePath, err)
		}
		l.file = f
		l.sinks = append(l.sinks, f)
	}
	return l, nil
}

// NewWithSinks creates an EventLog writing to the given sinks. Tests use this
// to capture lines in a buffer.
func NewWithSinks(clock Clock, sinks ...io.Writer) *EventLog {
	return &EventLog{clock: clock, sinks: sinks}
}

// Record writes one event line, stamped with the elapsed seconds at the time
// of the call, to every sink.
func (l *EventLog) Record(message string) {
	elapsed := l.clock.Elapsed().Seconds()
	for _, w := range l.sinks {
		fmt.Fprintf(w, "%.6f - %s\n", elapsed, message)
	}
}

// Recordf is Record with fmt.Sprintf formatting.
func (l *EventLog) Recordf(format string, args ...any) {
	l.Record(fmt.Sprintf(format, args...))
}

// Close releases the file sink, if any. Safe to call when logging to screen
// only.
func (l *EventLog) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
