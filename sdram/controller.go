package sdram

import (
	"github.com/sarchlab/sdramsim/sim"
)

// HookPosStateChange is invoked every time the sequencer commits a state
// transition. The item is a StateChange.
var HookPosStateChange = &sim.HookPos{Name: "StateChange"}

// HookPosSignalFrame is invoked once per cycle with the signal frame that
// the controller presents for that cycle. The item is a FrameSample.
var HookPosSignalFrame = &sim.HookPos{Name: "SignalFrame"}

// A StateChange describes one committed transition.
type StateChange struct {
	From  State
	To    State
	Cycle uint64
}

// A FrameSample is one cycle's output pattern together with the state that
// produced it.
type FrameSample struct {
	Cycle uint64
	State State
	Frame SignalFrame
}

// Comp is the SDRAM controller. It sequences the device through
// initialization, access, refresh, and the low-power protocols, advancing
// all of its state exactly once per tick.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	timing Timing
	bus    Bus

	resetLine bool
	cmdLines  Command

	state   State
	latched Command

	powerUp   powerUpSequencer
	waitTimer holdTimer
	refresh   refreshTimer

	frame    SignalFrame
	readData uint16
	cycle    uint64

	runLength uint64
}

// Tick advances the controller by one cycle.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

// SetReset drives the reset line. Reset is immediately dominant: while the
// line is asserted every tick forces the Reset state and zeroes the
// power-up and wait timers, abandoning any in-flight operation.
func (c *Comp) SetReset(asserted bool) {
	c.resetLine = asserted
}

// Issue drives the command lines. The lines persist until the caller
// changes them; a command is only consumed when the sequencer is at a
// decision point in an accepting state. Callers should observe
// ReadyForCommand before issuing a read or a write.
func (c *Comp) Issue(cmd Command) {
	c.cmdLines = cmd.masked()
}

// ReadyForCommand is asserted exactly when the sequencer is in the Ready
// state.
func (c *Comp) ReadyForCommand() bool {
	return c.state == StateReady
}

// State returns the current sequencer state.
func (c *Comp) State() State {
	return c.state
}

// Frame returns the signal frame of the current cycle.
func (c *Comp) Frame() SignalFrame {
	return c.frame
}

// ReadData returns the value captured by the most recent read. It is valid
// from the tick after the read completed.
func (c *Comp) ReadData() uint16 {
	return c.readData
}

// Cycle returns the number of ticks the controller has executed.
func (c *Comp) Cycle() uint64 {
	return c.cycle
}

// Timing returns the timing constants the controller was built with.
func (c *Comp) Timing() Timing {
	return c.timing
}

type middleware struct {
	*Comp
}

// Tick executes one clock cycle: advance the timers, step the sequencer
// from a frozen snapshot of this cycle's inputs, then recompute the output
// frame for the committed state.
func (m *middleware) Tick() bool {
	if m.runLength > 0 && m.cycle >= m.runLength {
		return false
	}

	m.cycle++

	if m.resetLine {
		m.tickReset()
		return true
	}

	m.powerUp.tick(m.timing.PowerUpWait)
	m.refresh.tick(m.state == StateRefreshExecute)
	waitDone := m.advanceWaitTimer()

	in := tickInputs{
		state:      m.state,
		powerOK:    m.powerUp.ready,
		refreshDue: m.refresh.due(m.timing.TREF),
		waitDone:   waitDone,
		cmd:        m.cmdLines,
		latched:    m.latched,
	}

	// The read capture point is the wait_done pulse of the Read state,
	// CAS latency cycles after the state was entered.
	if in.state == StateRead && waitDone {
		m.readData = m.sampleBus()
	}

	next := nextState(in)
	if next != m.state {
		m.commitTransition(next, in)
	}

	m.frame = frameFor(m.state, m.timing, m.latched)
	m.publishFrame()

	return true
}

// tickReset is the cycle behavior while the reset line is asserted. The
// refresh interval timer is deliberately left running; only the power-up
// and wait timers are zeroed.
func (m *middleware) tickReset() {
	if m.state != StateReset {
		m.invokeStateChange(m.state, StateReset)
		m.state = StateReset
	}

	m.refresh.tick(false)
	m.powerUp.reset()
	m.waitTimer.reset()
	m.latched = Command{}

	m.frame = frameFor(m.state, m.timing, m.latched)
	m.publishFrame()
}

func (m *middleware) advanceWaitTimer() bool {
	hold, timed := m.timing.holdFor(m.state)
	if !timed {
		m.waitTimer.reset()
		return false
	}

	return m.waitTimer.advance(hold)
}

func (m *middleware) commitTransition(next State, in tickInputs) {
	m.waitTimer.reset()

	if in.state == StateReady && next == StateActive {
		m.latched = in.cmd.masked()
	}

	m.invokeStateChange(in.state, next)
	m.state = next
}

func (m *middleware) sampleBus() uint16 {
	if m.bus == nil {
		return 0
	}

	return m.bus.Sample()
}

func (m *middleware) publishFrame() {
	if m.bus != nil {
		m.bus.Observe(m.frame)
	}

	if m.NumHooks() == 0 {
		return
	}

	ctx := sim.HookCtx{
		Domain: m.Comp,
		Pos:    HookPosSignalFrame,
		Item: FrameSample{
			Cycle: m.cycle,
			State: m.state,
			Frame: m.frame,
		},
	}
	m.InvokeHook(ctx)
}

func (m *middleware) invokeStateChange(from, to State) {
	if m.NumHooks() == 0 {
		return
	}

	ctx := sim.HookCtx{
		Domain: m.Comp,
		Pos:    HookPosStateChange,
		Item: StateChange{
			From:  from,
			To:    to,
			Cycle: m.cycle,
		},
	}
	m.InvokeHook(ctx)
}
