package sdram

import (
	"github.com/sarchlab/sdramsim/sim"
)

// Builder can build SDRAM controllers.
type Builder struct {
	engine          sim.Engine
	freq            sim.Freq
	timing          Timing
	bus             Bus
	runLength       uint64
	additionalHooks []sim.Hook
}

// MakeBuilder creates a builder with default configuration: a 100MHz
// controller with the default -75 speed grade timing.
func MakeBuilder() Builder {
	return Builder{
		freq:   100 * sim.MHz,
		timing: DefaultTiming(),
	}
}

// WithEngine sets the engine that drives the controller.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the controller.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithTiming sets the timing constants the controller enforces. The
// constants cannot be changed after the controller is built.
func (b Builder) WithTiming(timing Timing) Builder {
	b.timing = timing
	return b
}

// WithBus attaches the device side of the data bus.
func (b Builder) WithBus(bus Bus) Builder {
	b.bus = bus
	return b
}

// WithRunLength limits the controller to n cycles. After n cycles the
// controller stops making progress so that an engine-driven run
// terminates. A run length of 0 lets the controller tick indefinitely.
func (b Builder) WithRunLength(n uint64) Builder {
	b.runLength = n
	return b
}

// WithAdditionalHook adds a hook to the controller being built.
func (b Builder) WithAdditionalHook(hook sim.Hook) Builder {
	b.additionalHooks = append(b.additionalHooks, hook)
	return b
}

// Build creates the controller. The controller starts in the Reset state
// with the reset line deasserted, so its first tick enters PowerUp.
func (b Builder) Build(name string) *Comp {
	b.timing.MustValidate()

	c := &Comp{
		timing:    b.timing,
		bus:       b.bus,
		runLength: b.runLength,
		state:     StateReset,
	}
	c.frame = frameFor(c.state, c.timing, c.latched)

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.AddMiddleware(&middleware{Comp: c})

	for _, hook := range b.additionalHooks {
		c.AcceptHook(hook)
	}

	return c
}
