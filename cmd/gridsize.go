package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemm-origami/origami/analytical"
)

var (
	gridSizeHW      hardwareFlags
	gridSizeProblem problemFlags
	gridSizeTile    string
	gridSizeMaxSplit int64
)

var gridSizeCmd = &cobra.Command{
	Use:   "gridsize",
	Short: "Select the best K-split factor for a fixed macro-tile",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := buildHardware(&gridSizeHW)
		if err != nil {
			return err
		}
		p := buildProblem(&gridSizeProblem)
		tile, err := parseTile(gridSizeTile)
		if err != nil {
			return err
		}

		grid, latency := analytical.SelectBestGridSize(h, p, tile, gridSizeMaxSplit)
		fmt.Printf("grid=%d latency=%.1f cycles\n", grid, latency)
		return nil
	},
}

func init() {
	f := gridSizeCmd.Flags()
	registerHardwareFlags(f, &gridSizeHW)
	registerProblemFlags(f, &gridSizeProblem)
	f.StringVar(&gridSizeTile, "tile", "128,128,32,32,32,8", "macro-tile \"MTM,MTN,MTK,MIM,MIN,MIK\"")
	f.Int64Var(&gridSizeMaxSplit, "max-split", 8, "largest allowable K-split factor")
}
