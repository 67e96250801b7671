package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemm-origami/origami/analytical"
)

var (
	devProcessor      string
	devCUCount        int
	devTargetProcessor string
)

var processorNames = map[string]analytical.Processor{
	"gfx803": analytical.ProcessorGFX803,
	"gfx900": analytical.ProcessorGFX900,
	"gfx90a": analytical.ProcessorGFX90A,
	"gfx942": analytical.ProcessorGFX942,
	"gfx950": analytical.ProcessorGFX950,
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Query the device catalog's CU-standardness and kernel-targeting rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, ok := processorNames[devProcessor]
		if !ok {
			return fmt.Errorf("unknown processor %q", devProcessor)
		}

		d := analytical.NewDevice(proc, devCUCount, devProcessor)
		fmt.Printf("%s cu=%d standard_cu=%v\n", d.Name, d.CUCount, d.IsStandardCU())

		if devTargetProcessor != "" {
			target, ok := processorNames[devTargetProcessor]
			if !ok {
				return fmt.Errorf("unknown target processor %q", devTargetProcessor)
			}
			fmt.Printf("runs_kernel_targeting(%s, %s)=%v\n", proc, target, d.RunsKernelTargeting(target))
		}
		return nil
	},
}

func init() {
	f := devicesCmd.Flags()
	f.StringVar(&devProcessor, "processor", "gfx942", "processor family (gfx803, gfx900, gfx90a, gfx942, gfx950)")
	f.IntVar(&devCUCount, "cu-count", 304, "compute-unit count")
	f.StringVar(&devTargetProcessor, "targets", "", "if set, also report whether --processor can run a kernel built for this processor")
}
