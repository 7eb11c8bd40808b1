// Loader for the classic colon-delimited configuration file format.
//
// The file is a fixed 13-line structure: a literal header, eleven
// "<label>: <value>" lines in fixed order, and a terminating End line.
// Any deviation is a fatal format error.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sim "github.com/denismorozov/OS-Simulator/sim"
	"github.com/denismorozov/OS-Simulator/sim/trace"
)

const (
	configHeader = "Start Simulator Configuration File"
	configFooter = "End Simulator Configuration File"
)

// LoadConfig loads a configuration file, dispatching on extension:
// .yaml/.yml use the YAML format, everything else the classic format.
func LoadConfig(path string) (*sim.Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadConfigYAML(path)
	default:
		return LoadConfigClassic(path)
	}
}

// LoadConfigClassic parses the classic colon-delimited grammar.
func LoadConfigClassic(path string) (*sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", sim.ErrConfigIO, path)
	}

	lines := nonEmptyLines(string(data))
	if len(lines) == 0 || lines[0] != configHeader {
		return nil, fmt.Errorf("%w: missing %q header", sim.ErrConfigFormat, configHeader)
	}
	if len(lines) != 13 {
		return nil, fmt.Errorf("%w: expected 13 lines, got %d", sim.ErrConfigFormat, len(lines))
	}
	if !strings.HasPrefix(lines[12], "End") {
		return nil, fmt.Errorf("%w: missing terminating End line", sim.ErrConfigFormat)
	}

	// Labels are ignored, order is fixed: everything after the first colon
	// on each line is the value.
	values := make([]string, 0, 11)
	for _, line := range lines[1:12] {
		_, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: expected '<label>: <value>', got %q", sim.ErrConfigFormat, line)
		}
		values = append(values, strings.TrimSpace(value))
	}

	version, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad version %q", sim.ErrConfigFormat, values[0])
	}
	if version != sim.Version {
		return nil, fmt.Errorf("%w: wrong simulator version %v (expected %v)", sim.ErrConfigFormat, version, sim.Version)
	}

	schedulingCode := values[2]
	if !sim.ValidSchedulingCode(schedulingCode) {
		return nil, fmt.Errorf("%w: %w: %q", sim.ErrConfigFormat, sim.ErrUnknownScheduler, schedulingCode)
	}

	quantum, err := strconv.Atoi(values[3])
	if err != nil {
		return nil, fmt.Errorf("%w: bad quantum %q", sim.ErrConfigFormat, values[3])
	}

	// Five cycle times, msec per cycle, order fixed:
	// processor, monitor, hard drive, printer, keyboard.
	cycleTimes := make([]time.Duration, 5)
	for i, raw := range values[4:9] {
		msec, err := strconv.Atoi(raw)
		if err != nil || msec < 0 {
			return nil, fmt.Errorf("%w: bad cycle time %q", sim.ErrConfigFormat, raw)
		}
		cycleTimes[i] = time.Duration(msec) * time.Millisecond
	}

	return &sim.Config{
		Version:        version,
		MetaDataPath:   values[1],
		SchedulingCode: schedulingCode,
		Quantum:        quantum,
		CycleTimes: sim.CycleTimes{
			Processor: cycleTimes[0],
			Monitor:   cycleTimes[1],
			HardDrive: cycleTimes[2],
			Printer:   cycleTimes[3],
			Keyboard:  cycleTimes[4],
		},
		LogDestination: trace.ParseDestination(values[9]),
		LogFilePath:    values[10],
	}, nil
}

// nonEmptyLines splits text into trimmed lines, dropping blank ones.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
