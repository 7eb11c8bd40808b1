// YAML rendition of the simulator configuration. Carries exactly the same
// fields as the classic format; `os-simulator convert` produces it from a
// classic file.

package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	sim "github.com/denismorozov/OS-Simulator/sim"
	"github.com/denismorozov/OS-Simulator/sim/trace"
)

// Define struct for YAML
type yamlConfig struct {
	Version    float64        `yaml:"version"`
	MetaData   string         `yaml:"metadata"`
	Scheduling string         `yaml:"scheduling"`
	Quantum    int            `yaml:"quantum"`
	CycleTimes yamlCycleTimes `yaml:"cycle_times_msec"`
	Log        yamlLog        `yaml:"log"`
}

type yamlCycleTimes struct {
	Processor int `yaml:"processor"`
	Monitor   int `yaml:"monitor"`
	HardDrive int `yaml:"hard_drive"`
	Printer   int `yaml:"printer"`
	Keyboard  int `yaml:"keyboard"`
}

type yamlLog struct {
	Destination string `yaml:"destination"` // screen, file, or both
	File        string `yaml:"file"`
}

// LoadConfigYAML parses the YAML configuration format into the same Config
// the classic loader produces, applying the same validation.
func LoadConfigYAML(path string) (*sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", sim.ErrConfigIO, path)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("%w: %v", sim.ErrConfigFormat, err)
	}

	if yc.Version != sim.Version {
		return nil, fmt.Errorf("%w: wrong simulator version %v (expected %v)", sim.ErrConfigFormat, yc.Version, sim.Version)
	}
	if !sim.ValidSchedulingCode(yc.Scheduling) {
		return nil, fmt.Errorf("%w: %w: %q", sim.ErrConfigFormat, sim.ErrUnknownScheduler, yc.Scheduling)
	}
	if !trace.IsValidDestination(yc.Log.Destination) {
		return nil, fmt.Errorf("%w: unknown log destination %q", sim.ErrConfigFormat, yc.Log.Destination)
	}
	for _, msec := range []int{yc.CycleTimes.Processor, yc.CycleTimes.Monitor, yc.CycleTimes.HardDrive, yc.CycleTimes.Printer, yc.CycleTimes.Keyboard} {
		if msec < 0 {
			return nil, fmt.Errorf("%w: negative cycle time %d", sim.ErrConfigFormat, msec)
		}
	}

	return &sim.Config{
		Version:        yc.Version,
		MetaDataPath:   yc.MetaData,
		SchedulingCode: yc.Scheduling,
		Quantum:        yc.Quantum,
		CycleTimes: sim.CycleTimes{
			Processor: time.Duration(yc.CycleTimes.Processor) * time.Millisecond,
			Monitor:   time.Duration(yc.CycleTimes.Monitor) * time.Millisecond,
			HardDrive: time.Duration(yc.CycleTimes.HardDrive) * time.Millisecond,
			Printer:   time.Duration(yc.CycleTimes.Printer) * time.Millisecond,
			Keyboard:  time.Duration(yc.CycleTimes.Keyboard) * time.Millisecond,
		},
		LogDestination: trace.Destination(yc.Log.Destination),
		LogFilePath:    yc.Log.File,
	}, nil
}

// MarshalConfigYAML renders a Config in the YAML configuration format.
func MarshalConfigYAML(cfg *sim.Config) ([]byte, error) {
	yc := yamlConfig{
		Version:    cfg.Version,
		MetaData:   cfg.MetaDataPath,
		Scheduling: cfg.SchedulingCode,
		Quantum:    cfg.Quantum,
		CycleTimes: yamlCycleTimes{
			Processor: int(cfg.CycleTimes.Processor / time.Millisecond),
			Monitor:   int(cfg.CycleTimes.Monitor / time.Millisecond),
			HardDrive: int(cfg.CycleTimes.HardDrive / time.Millisecond),
			Printer:   int(cfg.CycleTimes.Printer / time.Millisecond),
			Keyboard:  int(cfg.CycleTimes.Keyboard / time.Millisecond),
		},
		Log: yamlLog{
			Destination: string(cfg.LogDestination),
			File:        cfg.LogFilePath,
		},
	}
	return yaml.Marshal(&yc)
}
