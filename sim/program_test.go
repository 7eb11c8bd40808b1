package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// bracketed builds a program with the given inner operations wrapped in
// A(start)0 / A(end)0 brackets, the way the meta-data loader would.
func bracketed(inner ...Operation) *Program {
	p := NewProgram()
	p.AddOperation(Operation{Kind: OpProgramControl, Description: "start"})
	for _, op := range inner {
		p.AddOperation(op)
	}
	p.AddOperation(Operation{Kind: OpProgramControl, Description: "end"})
	return p
}

func TestNewProgram_StartsInStartState(t *testing.T) {
	p := NewProgram()
	assert.Equal(t, StateStart, p.State)
	assert.Equal(t, 0, p.ID)
	assert.True(t, p.Done())
}

func TestRunningTime_ExcludesProgramControlBrackets(t *testing.T) {
	p := bracketed(
		Operation{Kind: OpProcessing, Description: "run", Cycles: 3, CycleTime: 10 * time.Millisecond},
		Operation{Kind: OpInput, Description: "hard drive", Cycles: 2, CycleTime: 5 * time.Millisecond},
	)
	// 30ms + 10ms; brackets contribute nothing even with nonzero fields
	assert.Equal(t, 40*time.Millisecond, p.RunningTime())
}

func TestRunningTime_BracketsWithNonzeroDurationStillExcluded(t *testing.T) {
	p := NewProgram()
	p.AddOperation(Operation{Kind: OpProgramControl, Description: "start", Cycles: 5, CycleTime: time.Second})
	p.AddOperation(Operation{Kind: OpProgramControl, Description: "end", Cycles: 5, CycleTime: time.Second})
	assert.Equal(t, time.Duration(0), p.RunningTime())
}

func TestNext_ConsumesInFIFOOrder(t *testing.T) {
	p := bracketed(
		Operation{Kind: OpProcessing, Description: "run", Cycles: 1},
		Operation{Kind: OpOutput, Description: "monitor", Cycles: 2},
	)

	assert.Equal(t, 4, p.Remaining())
	assert.Equal(t, "start", p.Next().Description)
	assert.Equal(t, OpProcessing, p.Next().Kind)
	assert.Equal(t, OpOutput, p.Next().Kind)
	assert.False(t, p.Done())
	assert.Equal(t, "end", p.Next().Description)
	assert.True(t, p.Done())
}

func TestRunningTime_ImmutableAfterConsumption(t *testing.T) {
	p := bracketed(Operation{Kind: OpProcessing, Description: "run", Cycles: 2, CycleTime: time.Millisecond})
	want := p.RunningTime()

	for !p.Done() {
		p.Next()
	}
	assert.Equal(t, want, p.RunningTime())
}

func TestProgramStateString(t *testing.T) {
	assert.Equal(t, "start", StateStart.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "exit", StateExit.String())
}
