package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/denismorozov/OS-Simulator/sim"
)

var metaCycleTimes = sim.CycleTimes{
	Processor: 10 * time.Millisecond,
	Monitor:   20 * time.Millisecond,
	HardDrive: 15 * time.Millisecond,
	Printer:   25 * time.Millisecond,
	Keyboard:  50 * time.Millisecond,
}

const validMetaData = `Start Program Meta-Data Code:
S(start)0; A(start)0; P(run)3; I(hard drive)2;
O(monitor)2; A(end)0; A(start)0; P(run)5;
A(end)0; S(end)0.
End Program Meta-Data Code.
`

func TestLoadMetaData_ParsesPrograms(t *testing.T) {
	programs, err := LoadMetaData(writeConfig(t, "Test_1.mdf", validMetaData), metaCycleTimes)
	require.NoError(t, err)
	require.Len(t, programs, 2)

	first := programs[0].Operations()
	require.Len(t, first, 5)
	assert.Equal(t, "A(start)0", first[0].String())
	assert.Equal(t, "P(run)3", first[1].String())
	assert.Equal(t, "I(hard drive)2", first[2].String())
	assert.Equal(t, "O(monitor)2", first[3].String())
	assert.Equal(t, "A(end)0", first[4].String())

	second := programs[1].Operations()
	require.Len(t, second, 3)
	assert.Equal(t, "P(run)5", second[1].String())
}

func TestLoadMetaData_ResolvesCycleTimesAtLoad(t *testing.T) {
	programs, err := LoadMetaData(writeConfig(t, "Test_1.mdf", validMetaData), metaCycleTimes)
	require.NoError(t, err)

	ops := programs[0].Operations()
	assert.Equal(t, 10*time.Millisecond, ops[1].CycleTime) // P(run)
	assert.Equal(t, 15*time.Millisecond, ops[2].CycleTime) // I(hard drive)
	assert.Equal(t, 20*time.Millisecond, ops[3].CycleTime) // O(monitor)
	assert.Equal(t, time.Duration(0), ops[0].CycleTime)    // A(start)
}

func TestLoadMetaData_ComputesRunningTimes(t *testing.T) {
	programs, err := LoadMetaData(writeConfig(t, "Test_1.mdf", validMetaData), metaCycleTimes)
	require.NoError(t, err)

	// P(run)3*10 + I(hard drive)2*15 + O(monitor)2*20 = 100ms
	assert.Equal(t, 100*time.Millisecond, programs[0].RunningTime())
	// P(run)5*10 = 50ms
	assert.Equal(t, 50*time.Millisecond, programs[1].RunningTime())
}

func TestLoadMetaData_MissingFile(t *testing.T) {
	_, err := LoadMetaData(t.TempDir()+"/absent.mdf", metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrMetaDataIO)
}

func TestLoadMetaData_MissingHeader(t *testing.T) {
	contents := `S(start)0; A(start)0; A(end)0; S(end)0.
End Program Meta-Data Code.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrMetaDataFormat)
}

func TestLoadMetaData_MissingSimulatorStartFlag(t *testing.T) {
	contents := `Start Program Meta-Data Code:
A(start)0; P(run)3; A(end)0; S(end)0.
End Program Meta-Data Code.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrMetaDataFormat)
}

func TestLoadMetaData_MissingSimulatorEndFlag(t *testing.T) {
	contents := `Start Program Meta-Data Code:
S(start)0; A(start)0; P(run)3; A(end)0.
End Program Meta-Data Code.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrMetaDataFormat)
}

func TestLoadMetaData_MissingFooter(t *testing.T) {
	contents := `Start Program Meta-Data Code:
S(start)0; A(start)0; P(run)3; A(end)0; S(end)0.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrMetaDataFormat)
}

func TestLoadMetaData_MissingProgramEndBracket(t *testing.T) {
	contents := `Start Program Meta-Data Code:
S(start)0; A(start)0; P(run)3; S(end)0.
End Program Meta-Data Code.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrMetaDataFormat)
}

func TestLoadMetaData_MalformedToken(t *testing.T) {
	contents := `Start Program Meta-Data Code:
S(start)0; A(start)0; Prun3; A(end)0; S(end)0.
End Program Meta-Data Code.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrMetaDataFormat)
}

func TestLoadMetaData_BadCycleCount(t *testing.T) {
	contents := `Start Program Meta-Data Code:
S(start)0; A(start)0; P(run)three; A(end)0; S(end)0.
End Program Meta-Data Code.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrMetaDataFormat)
}

func TestLoadMetaData_UnknownTypeLetter(t *testing.T) {
	contents := `Start Program Meta-Data Code:
S(start)0; A(start)0; X(run)3; A(end)0; S(end)0.
End Program Meta-Data Code.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrUnrecognizedOperation)
}

func TestLoadMetaData_UnknownDevice(t *testing.T) {
	contents := `Start Program Meta-Data Code:
S(start)0; A(start)0; I(tape)3; A(end)0; S(end)0.
End Program Meta-Data Code.
`
	_, err := LoadMetaData(writeConfig(t, "bad.mdf", contents), metaCycleTimes)
	assert.ErrorIs(t, err, sim.ErrUnrecognizedOperation)
}

func TestLoadMetaData_EmptyBatchIsValid(t *testing.T) {
	contents := `Start Program Meta-Data Code:
S(start)0; S(end)0.
End Program Meta-Data Code.
`
	programs, err := LoadMetaData(writeConfig(t, "empty.mdf", contents), metaCycleTimes)
	require.NoError(t, err)
	assert.Empty(t, programs)
}
