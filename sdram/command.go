package sdram

// An Opcode selects the operation that a user command requests.
type Opcode int

// All the opcodes that the controller recognizes. Any other value is
// treated as OpcodeNop.
const (
	OpcodeNop Opcode = iota
	OpcodeRead
	OpcodeWrite
	OpcodeRefresh
	OpcodeEnterPowerDown
	OpcodeEnterSelfRefresh
	OpcodeExitLowPower
)

func (o Opcode) String() string {
	switch o {
	case OpcodeNop:
		return "Nop"
	case OpcodeRead:
		return "Read"
	case OpcodeWrite:
		return "Write"
	case OpcodeRefresh:
		return "Refresh"
	case OpcodeEnterPowerDown:
		return "EnterPowerDown"
	case OpcodeEnterSelfRefresh:
		return "EnterSelfRefresh"
	case OpcodeExitLowPower:
		return "ExitLowPower"
	}

	return "Unknown"
}

// isRecognized returns true if the opcode is one of the defined values.
func (o Opcode) isRecognized() bool {
	return o >= OpcodeNop && o <= OpcodeExitLowPower
}

// A Command is the user-facing command request. The command lines are
// sampled once per cycle. They are only meaningful while Valid is asserted
// and are only acted upon while the controller is in an accepting state.
type Command struct {
	Valid  bool
	Opcode Opcode
	Row    uint16
	Col    uint16
	Bank   uint8
	Data   uint16
}

// masked returns a copy of the command with the address fields clamped to
// their physical widths (13-bit row, 9-bit column, 2-bit bank).
func (c Command) masked() Command {
	c.Row &= rowMask
	c.Col &= colMask
	c.Bank &= bankMask

	return c
}

const (
	rowMask  = 0x1FFF
	colMask  = 0x01FF
	bankMask = 0x03
)
