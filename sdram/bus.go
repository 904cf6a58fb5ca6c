package sdram

// A Bus is the device-side end of the bidirectional data bus plus the
// control lines. The controller publishes its signal frame to the bus once
// per cycle and samples the bus value when it captures read data.
//
// The electrical behavior of the bus is out of the controller's scope; a
// Bus implementation only needs to model the enable/value abstraction.
type Bus interface {
	// Observe presents one cycle's signal frame to the device side.
	Observe(frame SignalFrame)

	// Sample returns the value currently on the data bus. The returned
	// value is only meaningful while the device side is driving the bus.
	Sample() uint16
}
