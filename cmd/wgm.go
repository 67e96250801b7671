package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gemm-origami/origami/analytical"
)

var (
	wgmHW       hardwareFlags
	wgmProblem  problemFlags
	wgmTile     string
	wgmCandidates []string
)

var wgmCmd = &cobra.Command{
	Use:   "wgm",
	Short: "Select the workgroup-mapping value that maximizes the L2 hit rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := buildHardware(&wgmHW)
		if err != nil {
			return err
		}
		p := buildProblem(&wgmProblem)
		tile, err := parseTile(wgmTile)
		if err != nil {
			return err
		}

		candidates := make([]int64, 0, len(wgmCandidates))
		for _, c := range wgmCandidates {
			v, err := strconv.ParseInt(strings.TrimSpace(c), 10, 64)
			if err != nil {
				return fmt.Errorf("wgm candidate %q: %w", c, err)
			}
			candidates = append(candidates, v)
		}

		bestWGM, bestHit, err := analytical.SelectBestWGM(h, p, tile, candidates)
		if err != nil {
			return err
		}
		fmt.Printf("wgm=%d l2_hit=%.4f\n", bestWGM, bestHit)
		return nil
	},
}

func init() {
	f := wgmCmd.Flags()
	registerHardwareFlags(f, &wgmHW)
	registerProblemFlags(f, &wgmProblem)
	f.StringVar(&wgmTile, "tile", "128,128,32,32,32,8", "macro-tile \"MTM,MTN,MTK,MIM,MIN,MIK\"")
	f.StringSliceVar(&wgmCandidates, "candidates", []string{"1", "2", "4", "8"}, "candidate WGM values")
}
