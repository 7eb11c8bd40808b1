// sim/simulator.go
package sim

import "github.com/sirupsen/logrus"

// Simulator is the core object that ties one run together: the loaded
// configuration, the batch of programs, the clock, the event log, and the
// scheduling discipline driving it all.
type Simulator struct {
	Config   Config
	Programs []*Program

	ctx       *SimulationContext
	scheduler Scheduler
}

// NewSimulator builds a Simulator for one run. The scheduling code must be
// one of FIFO, SJF, SRTF-N; anything else is an ErrUnknownScheduler (normally
// caught earlier by the config loader).
func NewSimulator(cfg Config, programs []*Program, ctx *SimulationContext) (*Simulator, error) {
	scheduler, err := NewScheduler(cfg.SchedulingCode, ctx)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		Config:    cfg,
		Programs:  programs,
		ctx:       ctx,
		scheduler: scheduler,
	}, nil
}

// Run executes the whole batch under the configured discipline. The clock's
// zero point is the moment the simulator announces its own start; every event
// line is stamped relative to it.
func (s *Simulator) Run() {
	s.ctx.Clock.Start()
	s.ctx.Log.Record("Simulator program starting")
	logrus.Infof("running %d program(s) under %s", len(s.Programs), s.Config.SchedulingCode)

	s.scheduler.Run(s.Programs)

	s.ctx.Log.Record("Simulator program ending")
	logrus.Infof("simulation ended after %s", s.ctx.Clock.Elapsed())
}
