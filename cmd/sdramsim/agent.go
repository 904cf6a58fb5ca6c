package main

import (
	"fmt"
	"io"

	"github.com/sarchlab/sdramsim/sdram"
	"github.com/sarchlab/sdramsim/sim"
)

// A step is one scripted command plus the states that prove the controller
// accepted it and finished executing it.
type step struct {
	cmd      sdram.Command
	accepted sdram.State
	done     sdram.State
}

type agentPhase int

const (
	phaseWaitAccept agentPhase = iota
	phaseWaitConsume
	phaseWaitDone
)

// workloadAgent drives the controller's command lines through a fixed
// script, one command at a time, holding each command until the controller
// consumes it and waiting for the operation to finish before issuing the
// next one.
type workloadAgent struct {
	*sim.TickingComponent

	ctrl  *sdram.Comp
	steps []step
	index int
	phase agentPhase

	readsSeen []uint16
}

func newWorkloadAgent(
	name string,
	engine sim.Engine,
	ctrl *sdram.Comp,
	steps []step,
) *workloadAgent {
	a := &workloadAgent{
		ctrl:  ctrl,
		steps: steps,
	}
	a.TickingComponent = sim.NewTickingComponent(name, engine, ctrl.Freq, a)

	return a
}

// Tick advances the script. The agent stops making progress when the
// script is exhausted.
func (a *workloadAgent) Tick() bool {
	if a.index >= len(a.steps) {
		return false
	}

	s := a.steps[a.index]
	state := a.ctrl.State()

	switch a.phase {
	case phaseWaitAccept:
		if a.accepting(s.cmd.Opcode) {
			a.ctrl.Issue(s.cmd)
			a.phase = phaseWaitConsume
		}

	case phaseWaitConsume:
		if state == s.accepted {
			a.ctrl.Issue(sdram.Command{})
			a.phase = phaseWaitDone
		}

	case phaseWaitDone:
		if state == s.done {
			a.finishStep(s)
		}
	}

	return true
}

// accepting reports whether the controller is in a state that will act on
// the given opcode.
func (a *workloadAgent) accepting(op sdram.Opcode) bool {
	state := a.ctrl.State()

	if op == sdram.OpcodeExitLowPower {
		return state == sdram.StatePowerDown ||
			state == sdram.StateSelfRefresh
	}

	return state == sdram.StateReady
}

func (a *workloadAgent) finishStep(s step) {
	if s.cmd.Opcode == sdram.OpcodeRead {
		a.readsSeen = append(a.readsSeen, a.ctrl.ReadData())
	}

	a.index++
	a.phase = phaseWaitAccept
}

func (a *workloadAgent) report(w io.Writer) {
	fmt.Fprintf(w, "Completed %d of %d scripted commands\n",
		a.index, len(a.steps))

	for i, v := range a.readsSeen {
		fmt.Fprintf(w, "read[%d] = 0x%04X\n", i, v)
	}
}

func accessStep(op sdram.Opcode, bank uint8, row, col, data uint16) step {
	return step{
		cmd: sdram.Command{
			Valid:  true,
			Opcode: op,
			Bank:   bank,
			Row:    row,
			Col:    col,
			Data:   data,
		},
		accepted: sdram.StateActive,
		done:     sdram.StateReady,
	}
}

// defaultScript writes a handful of words, reads them back, forces a
// refresh, and round-trips both low-power modes.
func defaultScript() []step {
	return []step{
		accessStep(sdram.OpcodeWrite, 1, 0x0A5, 0x03F, 0xDEAD),
		accessStep(sdram.OpcodeWrite, 2, 0x100, 0x001, 0xBEEF),
		accessStep(sdram.OpcodeRead, 1, 0x0A5, 0x03F, 0),
		accessStep(sdram.OpcodeRead, 2, 0x100, 0x001, 0),
		{
			cmd:      sdram.Command{Valid: true, Opcode: sdram.OpcodeRefresh},
			accepted: sdram.StateRefreshRequest,
			done:     sdram.StateReady,
		},
		{
			cmd: sdram.Command{
				Valid:  true,
				Opcode: sdram.OpcodeEnterPowerDown,
			},
			accepted: sdram.StatePowerDownEntry,
			done:     sdram.StatePowerDown,
		},
		{
			cmd: sdram.Command{
				Valid:  true,
				Opcode: sdram.OpcodeExitLowPower,
			},
			accepted: sdram.StateReady,
			done:     sdram.StateReady,
		},
		{
			cmd: sdram.Command{
				Valid:  true,
				Opcode: sdram.OpcodeEnterSelfRefresh,
			},
			accepted: sdram.StateSelfRefreshEntry,
			done:     sdram.StateSelfRefresh,
		},
		{
			cmd: sdram.Command{
				Valid:  true,
				Opcode: sdram.OpcodeExitLowPower,
			},
			accepted: sdram.StateSelfRefreshExit,
			done:     sdram.StateReady,
		},
	}
}
