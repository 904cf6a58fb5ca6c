package sdram

// A Device is a behavioral model of the SDRAM device on the far side of
// the bus. It decodes the control-line patterns the controller presents,
// stores 16-bit words per {bank, row, column}, and answers column reads
// after the programmed CAS latency through an internal delay line.
//
// The model is deliberately trusting: it assumes the controller honors
// the device timing, which is exactly what the controller is built to
// guarantee.
type Device struct {
	casLatency int

	cells    map[uint32]uint16
	openRow  [numBanks]uint16
	rowValid [numBanks]bool

	prev SignalFrame

	pipeline []pendingRead

	driving    bool
	driveValue uint16
}

const numBanks = 4

type pendingRead struct {
	value uint16
	dueIn int
}

// NewDevice creates a device model. The CAS latency is re-programmed by
// the mode-register-set command during controller initialization.
func NewDevice() *Device {
	return &Device{
		casLatency: 2,
		cells:      make(map[uint32]uint16),
	}
}

// Observe consumes one cycle's signal frame. A command is decoded only
// when the pattern changes from the previous cycle; the controller holds
// each pattern for the full hold time of the state that produced it.
func (d *Device) Observe(frame SignalFrame) {
	d.agePipeline()

	if frame != d.prev {
		d.decode(frame)
	}

	d.prev = frame
}

// Sample returns the value the device is driving on the data bus. The
// value is only meaningful while a read response is mature; the controller
// samples it exactly CAS latency cycles after the column read.
func (d *Device) Sample() uint16 {
	return d.driveValue
}

// Driving reports whether the device side is actively driving the bus.
func (d *Device) Driving() bool {
	return d.driving
}

// Poke stores a value directly into the cell array, bypassing the bus.
func (d *Device) Poke(bank uint8, row, col uint16, value uint16) {
	d.cells[cellKey(bank, row, col)] = value
}

// Peek reads a cell directly, bypassing the bus.
func (d *Device) Peek(bank uint8, row, col uint16) uint16 {
	return d.cells[cellKey(bank, row, col)]
}

func (d *Device) agePipeline() {
	d.driving = false

	remaining := d.pipeline[:0]
	for _, p := range d.pipeline {
		p.dueIn--
		if p.dueIn <= 0 {
			d.driveValue = p.value
			d.driving = true
			continue
		}

		remaining = append(remaining, p)
	}

	d.pipeline = remaining
}

func (d *Device) decode(frame SignalFrame) {
	if !frame.ChipSelect {
		return
	}

	switch {
	case frame.RowStrobe && !frame.ColStrobe && !frame.WriteEnable:
		d.activate(frame)

	case frame.RowStrobe && !frame.ColStrobe && frame.WriteEnable:
		d.precharge(frame)

	case frame.RowStrobe && frame.ColStrobe && frame.WriteEnable:
		d.loadMode(frame)

	case frame.RowStrobe && frame.ColStrobe && !frame.WriteEnable:
		// Auto refresh and self refresh restore charge; the cell values in
		// this model never decay, so there is nothing to do.

	case !frame.RowStrobe && frame.ColStrobe && frame.WriteEnable:
		d.write(frame)

	case !frame.RowStrobe && frame.ColStrobe && !frame.WriteEnable:
		d.read(frame)
	}
}

func (d *Device) activate(frame SignalFrame) {
	bank := frame.Bank & bankMask
	d.openRow[bank] = frame.Address & rowMask
	d.rowValid[bank] = true
}

func (d *Device) precharge(frame SignalFrame) {
	if frame.Address&prechargeAllBit != 0 {
		for b := range d.rowValid {
			d.rowValid[b] = false
		}

		return
	}

	d.rowValid[frame.Bank&bankMask] = false
}

func (d *Device) loadMode(frame SignalFrame) {
	cl := int(frame.Address>>4) & 0x7
	if cl >= 1 && cl <= 3 {
		d.casLatency = cl
	}
}

func (d *Device) read(frame SignalFrame) {
	bank := frame.Bank & bankMask
	if !d.rowValid[bank] {
		return
	}

	value := d.cells[cellKey(bank, d.openRow[bank], frame.Address&colMask)]
	d.pipeline = append(d.pipeline, pendingRead{
		value: value,
		dueIn: d.casLatency,
	})
}

func (d *Device) write(frame SignalFrame) {
	bank := frame.Bank & bankMask
	if !d.rowValid[bank] || !frame.DataOutEnable {
		return
	}

	key := cellKey(bank, d.openRow[bank], frame.Address&colMask)
	old := d.cells[key]
	d.cells[key] = mergeMasked(old, frame.DataOut, frame.DQM)
}

// mergeMasked applies the two data-mask bits: a set bit blocks the write
// of the corresponding byte lane.
func mergeMasked(old, in uint16, dqm uint8) uint16 {
	out := in

	if dqm&0x1 != 0 {
		out = out&0xFF00 | old&0x00FF
	}

	if dqm&0x2 != 0 {
		out = out&0x00FF | old&0xFF00
	}

	return out
}

func cellKey(bank uint8, row, col uint16) uint32 {
	return uint32(bank)<<22 | uint32(row)<<9 | uint32(col)
}
