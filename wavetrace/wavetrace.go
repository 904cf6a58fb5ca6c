// Package wavetrace records the cycle-level activity of an SDRAM
// controller: one entry per cycle for the signal frame and one entry per
// committed state transition.
package wavetrace

import (
	"github.com/sarchlab/sdramsim/datarecording"
	"github.com/sarchlab/sdramsim/sdram"
	"github.com/sarchlab/sdramsim/sim"
)

// A TickEntry is one cycle of the controller's output pins.
type TickEntry struct {
	Cycle       uint64
	State       string
	ChipSelect  bool
	RowStrobe   bool
	ColStrobe   bool
	WriteEnable bool
	ClockEnable bool
	Bank        uint8
	Address     uint16
	DQM         uint8
	DriveEnable bool
	DataOut     uint16
}

// A TransitionEntry is one committed state transition.
type TransitionEntry struct {
	Cycle uint64
	From  string
	To    string
}

// A Tracer is a hook that streams controller activity into a
// DataRecorder.
type Tracer struct {
	recorder datarecording.DataRecorder

	frameTable      string
	transitionTable string
}

// NewTracer creates a Tracer and its two tables on the recorder. Attach
// the returned tracer to a controller with AcceptHook or
// Builder.WithAdditionalHook.
func NewTracer(recorder datarecording.DataRecorder) *Tracer {
	t := &Tracer{
		recorder:        recorder,
		frameTable:      "signal_frames",
		transitionTable: "state_transitions",
	}

	recorder.CreateTable(t.frameTable, TickEntry{})
	recorder.CreateTable(t.transitionTable, TransitionEntry{})

	return t
}

// Func records the hooked item.
func (t *Tracer) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case sdram.HookPosSignalFrame:
		t.recordFrame(ctx.Item.(sdram.FrameSample))
	case sdram.HookPosStateChange:
		t.recordTransition(ctx.Item.(sdram.StateChange))
	}
}

func (t *Tracer) recordFrame(sample sdram.FrameSample) {
	frame := sample.Frame

	t.recorder.InsertData(t.frameTable, TickEntry{
		Cycle:       sample.Cycle,
		State:       sample.State.String(),
		ChipSelect:  frame.ChipSelect,
		RowStrobe:   frame.RowStrobe,
		ColStrobe:   frame.ColStrobe,
		WriteEnable: frame.WriteEnable,
		ClockEnable: frame.ClockEnable,
		Bank:        frame.Bank,
		Address:     frame.Address,
		DQM:         frame.DQM,
		DriveEnable: frame.DataOutEnable,
		DataOut:     frame.DataOut,
	})
}

func (t *Tracer) recordTransition(change sdram.StateChange) {
	t.recorder.InsertData(t.transitionTable, TransitionEntry{
		Cycle: change.Cycle,
		From:  change.From.String(),
		To:    change.To.String(),
	})
}
