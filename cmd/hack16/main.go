// Command hack16 runs or disassembles Hack programs against the
// from-the-gates emulator in this module. Grounded on
// oisee-z80-optimizer/cmd/z80opt/main.go's cobra command tree.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/computer"
	"github.com/nandgate/hack16/disassembler"
	"github.com/nandgate/hack16/display"
	"github.com/nandgate/hack16/memory"
	"github.com/nandgate/hack16/monitor"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hack16",
		Short: "A from-the-gates emulator for the Hack 16-bit computer",
	}

	var (
		romPath      string
		maxTicks     int
		useMonitor   bool
		useDisplay   bool
		displayScale int
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a program and run it",
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := loadROM(romPath)
			if err != nil {
				return err
			}
			comp := computer.New(rom)

			if useMonitor {
				return monitor.Run(comp)
			}

			var renderer *display.Renderer
			if useDisplay {
				renderer, err = display.NewRenderer(displayScale)
				if err != nil {
					return fmt.Errorf("hack16: opening display: %w", err)
				}
				defer renderer.Close()
			}

			for i := 0; maxTicks == 0 || i < maxTicks; i++ {
				if err := comp.Tick(false); err != nil {
					return fmt.Errorf("hack16: tick %d: %w", i, err)
				}
				if renderer != nil && i%1000 == 0 {
					if err := renderer.Draw(comp.Mem.Screen()); err != nil {
						return fmt.Errorf("hack16: drawing: %w", err)
					}
				}
			}
			fmt.Printf("ran %d ticks\n", maxTicks)
			return nil
		},
	}
	runCmd.Flags().StringVar(&romPath, "rom", "", "path to a .hack binary or plain-text program")
	runCmd.Flags().IntVar(&maxTicks, "ticks", 0, "number of clock ticks to run (0 = unbounded)")
	runCmd.Flags().BoolVar(&useMonitor, "monitor", false, "launch the interactive step debugger instead of running headless")
	runCmd.Flags().BoolVar(&useDisplay, "display", false, "open an SDL2 window mirroring the screen region")
	runCmd.Flags().IntVar(&displayScale, "display-scale", 1, "pixel scale factor for --display")
	_ = runCmd.MarkFlagRequired("rom")

	disasmCmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble a program to mnemonic text",
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := loadROM(romPath)
			if err != nil {
				return err
			}
			for i := 0; i < 1<<15; i++ {
				word := rom.Read(addrOf(i))
				if word.IsZero() {
					continue
				}
				fmt.Printf("%5d  %s\n", i, disassembler.Step(word))
			}
			return nil
		},
	}
	disasmCmd.Flags().StringVar(&romPath, "rom", "", "path to a .hack binary or plain-text program")
	_ = disasmCmd.MarkFlagRequired("rom")

	rootCmd.AddCommand(runCmd, disasmCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func loadROM(path string) (*memory.ROM32K, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hack16: opening %s: %w", path, err)
	}
	defer f.Close()
	rom, err := computer.LoadROM(f)
	if err != nil {
		return nil, fmt.Errorf("hack16: loading %s: %w", path, err)
	}
	return rom, nil
}

func addrOf(n int) bitvec.Addr15 {
	var a bitvec.Addr15
	for i := 14; i >= 0; i-- {
		a[i] = n&1 == 1
		n >>= 1
	}
	return a
}
