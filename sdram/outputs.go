package sdram

// frameFor maps a state to the control-line pattern that the device sees
// while that state is active. The mapping is total: every state produces a
// defined pattern, starting from the Nop default and overriding per state.
func frameFor(state State, timing Timing, latched Command) SignalFrame {
	frame := nopFrame()

	switch state {
	case StateReset:
		frame = resetFrame()

	case StatePowerUp, StateReady, StateRefreshRequest:
		// Nop default.

	case StatePrecharge:
		frame.RowStrobe = true
		frame.WriteEnable = true
		frame.Address = prechargeAllBit

	case StateAutoRefresh1, StateAutoRefresh2, StateRefreshExecute:
		frame.RowStrobe = true
		frame.ColStrobe = true

	case StateLoadMode:
		frame.RowStrobe = true
		frame.ColStrobe = true
		frame.WriteEnable = true
		frame.Address = timing.modeRegisterWord()

	case StateActive:
		frame.RowStrobe = true
		frame.Bank = latched.Bank
		frame.Address = latched.Row

	case StateRead:
		frame.ColStrobe = true
		frame.Bank = latched.Bank
		frame.Address = latched.Col

	case StateWrite:
		frame.ColStrobe = true
		frame.WriteEnable = true
		frame.Bank = latched.Bank
		frame.Address = latched.Col
		frame.DataOutEnable = true
		frame.DataOut = latched.Data

	case StatePowerDownEntry, StatePowerDown:
		frame.ClockEnable = false

	case StateSelfRefreshEntry, StateSelfRefresh:
		// Self refresh is the auto-refresh pattern with the clock disabled.
		// The write-enable polarity here is datasheet dependent; this
		// controller holds it inactive.
		frame.RowStrobe = true
		frame.ColStrobe = true
		frame.ClockEnable = false

	case StateSelfRefreshExit:
		// The clock is already re-enabled while the exit delay elapses.
	}

	return frame
}
