// Command gbcore runs the headless DMG-CPU core against a ROM image.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/tindalos/gbcore/dmg"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gbcore",
		Short: "Headless Sharp LR35902 core",
	}

	var trace bool
	var maxSteps int
	var cpuProfile string

	runCmd := &cobra.Command{
		Use:   "run [rom-path]",
		Short: "Load a ROM and execute until it faults or max-steps is reached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], trace, maxSteps, cpuProfile)
		},
	}
	runCmd.Flags().BoolVar(&trace, "trace", false, "write one line per executed instruction to stderr")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many instructions (0 = unbounded)")
	runCmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Println("gbcore: unknown build")
				return nil
			}
			fmt.Printf("gbcore %s (%s)\n", info.Main.Version, info.GoVersion)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(romPath string, trace bool, maxSteps int, cpuProfile string) error {
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("gbcore: create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("gbcore: start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	rom, err := os.Open(romPath)
	if err != nil {
		return fmt.Errorf("gbcore: open rom: %w", err)
	}
	defer rom.Close()

	var traceOut io.Writer
	if trace {
		traceOut = os.Stderr
	}

	m, err := dmg.NewMachine(rom, os.Stdout, traceOut)
	if err != nil {
		return err
	}

	if maxSteps <= 0 {
		maxSteps = int(^uint(0) >> 1)
	}

	steps, err := m.Run(maxSteps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gbcore: stopped after %d steps: %v\n", steps, err)
		return err
	}

	fmt.Printf("gbcore: completed %d steps at PC=0x%04X\n", steps, m.PC())
	return nil
}
