package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/sdramsim/datarecording"
	"github.com/sarchlab/sdramsim/monitoring"
	"github.com/sarchlab/sdramsim/sdram"
	"github.com/sarchlab/sdramsim/sim"
	"github.com/sarchlab/sdramsim/wavetrace"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted workload against the controller",
	Run:   runSimulation,
}

var runFlags struct {
	cycles      uint64
	freqMHz     float64
	trace       string
	monitorPort int
	openBrowser bool

	tRCD        int
	tRP         int
	tRC         int
	tMRD        int
	tDPL        int
	casLatency  int
	tREF        int
	tXS         int
	powerUpWait int
}

func init() {
	t := sdram.DefaultTiming()

	runCmd.Flags().Uint64Var(&runFlags.cycles, "cycles",
		envUint("SDRAMSIM_CYCLES", 40000),
		"number of cycles to simulate")
	runCmd.Flags().Float64Var(&runFlags.freqMHz, "freq-mhz", 100,
		"controller clock frequency in MHz")
	runCmd.Flags().StringVar(&runFlags.trace, "trace",
		os.Getenv("SDRAMSIM_TRACE"),
		"record the signal trace into a SQLite database at this path")
	runCmd.Flags().IntVar(&runFlags.monitorPort, "monitor-port", 0,
		"serve the live monitor on this port (0 disables)")
	runCmd.Flags().BoolVar(&runFlags.openBrowser, "open-browser", false,
		"open the monitor dashboard in the default browser")

	runCmd.Flags().IntVar(&runFlags.tRCD, "trcd", t.TRCD,
		"activate-to-column delay in cycles")
	runCmd.Flags().IntVar(&runFlags.tRP, "trp", t.TRP,
		"precharge period in cycles")
	runCmd.Flags().IntVar(&runFlags.tRC, "trc", t.TRC,
		"refresh cycle time in cycles")
	runCmd.Flags().IntVar(&runFlags.tMRD, "tmrd", t.TMRD,
		"mode-register-set delay in cycles")
	runCmd.Flags().IntVar(&runFlags.tDPL, "tdpl", t.TDPL,
		"write-to-precharge delay in cycles")
	runCmd.Flags().IntVar(&runFlags.casLatency, "cas-latency", t.CASLatency,
		"CAS latency in cycles (1-3)")
	runCmd.Flags().IntVar(&runFlags.tREF, "tref", t.TREF,
		"maximum refresh interval in cycles")
	runCmd.Flags().IntVar(&runFlags.tXS, "txs", t.TXS,
		"self-refresh exit delay in cycles")
	runCmd.Flags().IntVar(&runFlags.powerUpWait, "powerup-wait", t.PowerUpWait,
		"power-stabilization delay in cycles")

	rootCmd.AddCommand(runCmd)
}

func runSimulation(_ *cobra.Command, _ []string) {
	engine := sim.NewSerialEngine()
	device := sdram.NewDevice()

	builder := sdram.MakeBuilder().
		WithEngine(engine).
		WithFreq(sim.Freq(runFlags.freqMHz) * sim.MHz).
		WithTiming(timingFromFlags()).
		WithBus(device).
		WithRunLength(runFlags.cycles)

	if runFlags.trace != "" {
		recorder := datarecording.New(runFlags.trace)
		builder = builder.WithAdditionalHook(wavetrace.NewTracer(recorder))
	}

	ctrl := builder.Build("Ctrl")
	agent := newWorkloadAgent("Agent", engine, ctrl, defaultScript())

	if runFlags.monitorPort != 0 {
		monitor := monitoring.NewMonitor().
			WithPortNumber(runFlags.monitorPort)
		if runFlags.openBrowser {
			monitor = monitor.WithBrowser()
		}

		monitor.RegisterEngine(engine)
		monitor.RegisterComponent(ctrl)
		monitor.StartServer()
	}

	ctrl.TickNow()
	agent.TickNow()

	err := engine.Run()
	if err != nil {
		panic(err)
	}
	engine.Finished()

	agent.report(os.Stdout)
	fmt.Printf("Simulated %d cycles, final state %s\n",
		ctrl.Cycle(), ctrl.State())

	atexit.Exit(0)
}

func timingFromFlags() sdram.Timing {
	return sdram.Timing{
		TRCD:        runFlags.tRCD,
		TRP:         runFlags.tRP,
		TRC:         runFlags.tRC,
		TMRD:        runFlags.tMRD,
		TDPL:        runFlags.tDPL,
		CASLatency:  runFlags.casLatency,
		TREF:        runFlags.tREF,
		TXS:         runFlags.tXS,
		PowerUpWait: runFlags.powerUpWait,
	}
}

func envUint(name string, fallback uint64) uint64 {
	s := os.Getenv(name)
	if s == "" {
		return fallback
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %s\n", name, s, err)
		return fallback
	}

	return v
}
