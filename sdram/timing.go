package sdram

import "fmt"

// Timing holds the cycle-count constants that the controller enforces. All
// the fields are fixed at construction time and never mutated afterwards.
type Timing struct {
	// TRCD is the activate-to-column-access delay.
	TRCD int

	// TRP is the precharge period.
	TRP int

	// TRC is the refresh/activate cycle time.
	TRC int

	// TMRD is the mode-register-set delay.
	TMRD int

	// TDPL is the data-in-to-precharge delay after a write.
	TDPL int

	// CASLatency is the number of cycles between a column read and the data
	// becoming valid on the bus.
	CASLatency int

	// TREF is the maximum number of cycles between two refresh executions.
	TREF int

	// TXS is the self-refresh exit delay.
	TXS int

	// PowerUpWait is the power-stabilization delay counted from reset
	// deassertion.
	PowerUpWait int
}

// DefaultTiming returns the timing of a -75 speed grade 256Mb part driven
// at 100MHz: 64ms/4096-row refresh period and a 200us power-up wait.
func DefaultTiming() Timing {
	return Timing{
		TRCD:        2,
		TRP:         3,
		TRC:         9,
		TMRD:        2,
		TDPL:        2,
		CASLatency:  2,
		TREF:        1562,
		TXS:         8,
		PowerUpWait: 20000,
	}
}

// MustValidate panics if the timing constants cannot be programmed into the
// device.
func (t Timing) MustValidate() {
	if t.CASLatency < 1 || t.CASLatency > 3 {
		panic(fmt.Sprintf(
			"CAS latency %d cannot be programmed into the mode register",
			t.CASLatency))
	}

	if t.TREF <= 0 {
		panic("refresh interval must be positive")
	}

	if t.TRCD < 0 || t.TRP < 0 || t.TRC < 0 || t.TMRD < 0 ||
		t.TDPL < 0 || t.TXS < 0 || t.PowerUpWait < 0 {
		panic("timing constants must be non-negative")
	}
}

// holdFor returns the hold time of a state and whether the state is timed
// at all. Untimed states keep the wait counter at zero.
func (t Timing) holdFor(s State) (hold int, timed bool) {
	switch s {
	case StatePrecharge:
		return t.TRP, true
	case StateAutoRefresh1, StateAutoRefresh2, StateRefreshExecute:
		return t.TRC, true
	case StateLoadMode:
		return t.TMRD, true
	case StateActive:
		return t.TRCD, true
	case StateRead:
		return t.CASLatency, true
	case StateWrite:
		return t.TDPL, true
	case StateSelfRefreshExit:
		return t.TXS, true
	}

	return 0, false
}

// modeRegisterWord returns the value driven on the address bus during a
// mode-register-set command: programmed CAS latency, sequential burst,
// burst length 1.
func (t Timing) modeRegisterWord() uint16 {
	return uint16(t.CASLatency) << 4
}
