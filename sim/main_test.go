package sim

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/denismorozov/OS-Simulator/sim/trace"
)

// newTestContext builds a SimulationContext on a virtual clock with the event
// log captured in a buffer.
func newTestContext() (*SimulationContext, *VirtualClock, *bytes.Buffer) {
	clock := NewVirtualClock()
	var buf bytes.Buffer
	log := trace.NewWithSinks(clock, &buf)
	return NewSimulationContext(clock, log), clock, &buf
}

// logLines splits the captured event log into its raw lines.
func logLines(buf *bytes.Buffer) []string {
	text := strings.TrimRight(buf.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// logMessages strips the "<elapsed> - " prefix from every captured line.
func logMessages(buf *bytes.Buffer) []string {
	var messages []string
	for _, line := range logLines(buf) {
		_, msg, found := strings.Cut(line, " - ")
		if !found {
			msg = line
		}
		messages = append(messages, msg)
	}
	return messages
}

// logTimestamps parses the elapsed-seconds prefix of every captured line.
func logTimestamps(buf *bytes.Buffer) []float64 {
	var stamps []float64
	for _, line := range logLines(buf) {
		prefix, _, _ := strings.Cut(line, " - ")
		ts, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			continue
		}
		stamps = append(stamps, ts)
	}
	return stamps
}
