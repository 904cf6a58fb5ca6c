// Package main provides the sdramsim command-line tool. It builds an SDRAM
// controller together with a behavioral device model and runs a scripted
// workload against them.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sdramsim",
	Short: "sdramsim simulates an SDRAM controller at the cycle level.",
	Long: `sdramsim simulates an SDRAM controller at the cycle level. It ` +
		`sequences a behavioral SDRAM device model through initialization, ` +
		`reads, writes, refreshes, and the low-power protocols, and can ` +
		`record the resulting signal trace or serve a live monitor.`,
}

func main() {
	// A .env file can preset the flags of the run command. Missing files
	// are fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
