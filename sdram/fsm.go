package sdram

// tickInputs is the frozen snapshot that a single cycle's transition
// decision is computed from. The sequencer never reads live state while
// deciding, so one tick always sees one consistent view.
type tickInputs struct {
	state      State
	powerOK    bool
	refreshDue bool
	waitDone   bool
	cmd        Command
	latched    Command
}

// nextState implements the transition table of the sequencer. It is a pure
// function; the caller commits the result at the end of the cycle.
func nextState(in tickInputs) State {
	switch in.state {
	case StateReset:
		return StatePowerUp

	case StatePowerUp:
		if in.powerOK {
			return StatePrecharge
		}

	case StatePrecharge:
		if in.waitDone {
			return StateAutoRefresh1
		}

	case StateAutoRefresh1:
		if in.waitDone {
			return StateAutoRefresh2
		}

	case StateAutoRefresh2:
		if in.waitDone {
			return StateLoadMode
		}

	case StateLoadMode:
		if in.waitDone {
			return StateReady
		}

	case StateReady:
		return nextStateFromReady(in)

	case StateRefreshRequest:
		return StateRefreshExecute

	case StateRefreshExecute:
		if in.waitDone {
			return StateReady
		}

	case StateActive:
		if in.waitDone {
			switch in.latched.Opcode {
			case OpcodeRead:
				return StateRead
			case OpcodeWrite:
				return StateWrite
			default:
				return StateReady
			}
		}

	case StateRead, StateWrite:
		if in.waitDone {
			return StateReady
		}

	case StatePowerDownEntry:
		return StatePowerDown

	case StatePowerDown:
		if in.cmd.Valid && in.cmd.Opcode == OpcodeExitLowPower {
			return StateReady
		}

	case StateSelfRefreshEntry:
		return StateSelfRefresh

	case StateSelfRefresh:
		if in.cmd.Valid && in.cmd.Opcode == OpcodeExitLowPower {
			return StateSelfRefreshExit
		}

	case StateSelfRefreshExit:
		if in.waitDone {
			return StateReady
		}
	}

	return in.state
}

// nextStateFromReady decides the successor of the Ready state. A due
// refresh takes priority over any pending user command. Unrecognized
// opcodes are treated as Nop.
func nextStateFromReady(in tickInputs) State {
	if in.refreshDue {
		return StateRefreshRequest
	}

	if !in.cmd.Valid {
		return StateReady
	}

	switch in.cmd.Opcode {
	case OpcodeRead, OpcodeWrite:
		return StateActive
	case OpcodeRefresh:
		return StateRefreshRequest
	case OpcodeEnterPowerDown:
		return StatePowerDownEntry
	case OpcodeEnterSelfRefresh:
		return StateSelfRefreshEntry
	}

	return StateReady
}
