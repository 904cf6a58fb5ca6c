package sdram

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Output Frames", func() {
	timing := testTiming()

	It("should produce a defined frame for every state", func() {
		for s := 0; s < NumStates; s++ {
			frame := frameFor(State(s), timing, Command{})

			if State(s) == StateReset {
				Expect(frame.ChipSelect).To(BeFalse())
			} else {
				Expect(frame.ChipSelect).To(BeTrue(), "state %s", State(s))
			}
		}
	})

	It("should keep the strobes idle in the nop-pattern states", func() {
		for _, s := range []State{
			StatePowerUp, StateReady, StateRefreshRequest,
		} {
			frame := frameFor(s, timing, Command{})

			Expect(frame.RowStrobe).To(BeFalse())
			Expect(frame.ColStrobe).To(BeFalse())
			Expect(frame.WriteEnable).To(BeFalse())
			Expect(frame.ClockEnable).To(BeTrue())
		}
	})

	It("should share one pattern between the refresh states", func() {
		auto1 := frameFor(StateAutoRefresh1, timing, Command{})
		auto2 := frameFor(StateAutoRefresh2, timing, Command{})
		execute := frameFor(StateRefreshExecute, timing, Command{})

		Expect(auto1).To(Equal(auto2))
		Expect(auto1).To(Equal(execute))
		Expect(auto1.RowStrobe).To(BeTrue())
		Expect(auto1.ColStrobe).To(BeTrue())
		Expect(auto1.WriteEnable).To(BeFalse())
	})

	It("should only drive the data bus during writes", func() {
		latched := Command{Valid: true, Opcode: OpcodeWrite, Data: 0x1234}

		for s := 0; s < NumStates; s++ {
			frame := frameFor(State(s), timing, latched)

			if State(s) == StateWrite {
				Expect(frame.DataOutEnable).To(BeTrue())
				Expect(frame.DataOut).To(Equal(uint16(0x1234)))
			} else {
				Expect(frame.DataOutEnable).To(BeFalse(), "state %s", State(s))
			}
		}
	})

	It("should disable the clock in all the low-power states", func() {
		for _, s := range []State{
			StatePowerDownEntry, StatePowerDown,
			StateSelfRefreshEntry, StateSelfRefresh,
		} {
			frame := frameFor(s, timing, Command{})

			Expect(frame.ClockEnable).To(BeFalse(), "state %s", s)
		}
	})

	It("should re-enable the clock during the self-refresh exit delay", func() {
		frame := frameFor(StateSelfRefreshExit, timing, Command{})

		Expect(frame.ClockEnable).To(BeTrue())
	})
})
