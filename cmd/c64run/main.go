// Command c64run drives the c64core CPU against a ROM image: either
// free-running with a periodic register trace, or interactively via the
// bubbletea debugger.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"c64core/cpu"
	"c64core/mem"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "c64run",
		Short: "Run or single-step a MOS 6510 against a ROM image",
	}

	var romPath string
	var at uint16
	var steps int

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a ROM and step the CPU a fixed number of times",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCPU(romPath, at)
			if err != nil {
				return err
			}
			c.Reset()
			for i := 0; i < steps; i++ {
				cycles := c.Step()
				logrus.WithFields(logrus.Fields{
					"pc": fmt.Sprintf("$%04x", c.ProgramCounter),
					"ac": fmt.Sprintf("$%02x", c.Accumulator),
					"x":  fmt.Sprintf("$%02x", c.X),
					"y":  fmt.Sprintf("$%02x", c.Y),
					"sp": fmt.Sprintf("$%02x", c.StackPointer),
				}).Infof("step %d: %d cycles", i, cycles)
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&romPath, "rom", "", "path to a ROM image (required)")
	runCmd.Flags().Uint16Var(&at, "at", 0, "address the ROM is mapped at")
	runCmd.Flags().IntVar(&steps, "steps", 1, "number of instructions to execute")
	runCmd.MarkFlagRequired("rom")

	debugCmd := &cobra.Command{
		Use:   "debug",
		Short: "Launch the interactive TUI debugger against a ROM image",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCPU(romPath, at)
			if err != nil {
				return err
			}
			c.Reset()
			return cpu.Debug(c.CPU6502, nil, at)
		},
	}
	debugCmd.Flags().StringVar(&romPath, "rom", "", "path to a ROM image (required)")
	debugCmd.Flags().Uint16Var(&at, "at", 0, "address the ROM is mapped at")
	debugCmd.MarkFlagRequired("rom")

	rootCmd.AddCommand(runCmd, debugCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// newCPU wires a RAM spanning the full address space with rom overlaid at
// at, and returns a 6510 with a reset pending, ready to step.
func newCPU(romPath string, at uint16) (*cpu.CPU6510, error) {
	if romPath == "" {
		return nil, fmt.Errorf("c64run: --rom is required")
	}
	ram := mem.NewRAM(0xffff)
	rom := mem.NewROM(romPath)
	bus := mem.NewMappedBus(ram, rom, at)
	return cpu.NewCPU6510(bus), nil
}
