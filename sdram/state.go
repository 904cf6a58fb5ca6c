package sdram

import "fmt"

// A State is one of the mutually exclusive states of the controller
// sequencer. Exactly one state is current at any cycle boundary and
// transitions only happen on clock edges.
type State int

// All the states of the controller sequencer.
const (
	// StateReset is the state that the controller is in while the reset line
	// is asserted.
	StateReset State = iota

	// StatePowerUp waits for the power-stabilization delay after reset.
	StatePowerUp

	// StatePrecharge, StateAutoRefresh1, StateAutoRefresh2, and StateLoadMode
	// form the mandatory initialization chain. The chain runs exactly once
	// between reset and the first time the controller becomes ready.
	StatePrecharge
	StateAutoRefresh1
	StateAutoRefresh2
	StateLoadMode

	// StateReady is the idle state. New commands are only accepted here and
	// in the two low-power states.
	StateReady

	// StateActive opens the requested row. StateRead and StateWrite perform
	// the column access afterwards.
	StateActive
	StateRead
	StateWrite

	// StateRefreshRequest and StateRefreshExecute perform one auto-refresh,
	// either on user request or forced by the refresh interval timer.
	StateRefreshRequest
	StateRefreshExecute

	// Low-power states. PowerDown suspends the clock without autonomous
	// refresh. SelfRefresh lets the device refresh itself.
	StatePowerDownEntry
	StatePowerDown
	StateSelfRefreshEntry
	StateSelfRefresh
	StateSelfRefreshExit
)

// NumStates is the total number of controller states.
const NumStates = int(StateSelfRefreshExit) + 1

func (s State) String() string {
	switch s {
	case StateReset:
		return "Reset"
	case StatePowerUp:
		return "PowerUp"
	case StatePrecharge:
		return "Precharge"
	case StateAutoRefresh1:
		return "AutoRefresh1"
	case StateAutoRefresh2:
		return "AutoRefresh2"
	case StateLoadMode:
		return "LoadMode"
	case StateReady:
		return "Ready"
	case StateActive:
		return "Active"
	case StateRead:
		return "Read"
	case StateWrite:
		return "Write"
	case StateRefreshRequest:
		return "RefreshRequest"
	case StateRefreshExecute:
		return "RefreshExecute"
	case StatePowerDownEntry:
		return "PowerDownEntry"
	case StatePowerDown:
		return "PowerDown"
	case StateSelfRefreshEntry:
		return "SelfRefreshEntry"
	case StateSelfRefresh:
		return "SelfRefresh"
	case StateSelfRefreshExit:
		return "SelfRefreshExit"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// acceptsCommand returns true if user commands are sampled in state s.
func (s State) acceptsCommand() bool {
	return s == StateReady || s == StatePowerDown || s == StateSelfRefresh
}
