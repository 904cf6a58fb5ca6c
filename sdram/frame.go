package sdram

// A SignalFrame is the physical control-line pattern that the controller
// presents for one cycle. It is fully recomputed every cycle from the
// current state and the latched command fields.
//
// ChipSelect, RowStrobe, ColStrobe, and WriteEnable model active-low pins:
// true means the pin is asserted (driven low). ClockEnable is active-high.
// The data bus is only driven while DataOutEnable is true; callers must not
// sample DataOut otherwise.
type SignalFrame struct {
	ChipSelect  bool
	RowStrobe   bool
	ColStrobe   bool
	WriteEnable bool
	ClockEnable bool

	Bank    uint8
	Address uint16
	DQM     uint8

	DataOutEnable bool
	DataOut       uint16
}

// nopFrame is the default pattern: device selected, no strobes, clock
// running.
func nopFrame() SignalFrame {
	return SignalFrame{
		ChipSelect:  true,
		ClockEnable: true,
	}
}

// resetFrame deselects the device entirely while keeping the clock enabled.
func resetFrame() SignalFrame {
	return SignalFrame{
		ClockEnable: true,
	}
}

// prechargeAllBit is the address bit that turns a precharge command into a
// precharge-all-banks command (A10 on the multiplexed address bus).
const prechargeAllBit = 1 << 10
