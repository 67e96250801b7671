package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemm-origami/origami/analytical"
)

var (
	rankHW      hardwareFlags
	rankProblem problemFlags
	rankTiles   []string
	rankTop     int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate macro-tile configurations by predicted latency",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := buildHardware(&rankHW)
		if err != nil {
			return err
		}
		p := buildProblem(&rankProblem)
		tiles, err := parseTiles(rankTiles)
		if err != nil {
			return err
		}

		results, err := analytical.SelectBestMacroTileSize(h, p, tiles)
		if err != nil {
			return err
		}

		top := rankTop
		if top <= 0 || top > len(results) {
			top = len(results)
		}
		for i, r := range results[:top] {
			tflops := analytical.EstimateTFLOPS(h, p, r.LatencyCycles)
			fmt.Printf("%d. MT=%dx%dx%d MI=%dx%dx%d latency=%.1f cycles est=%.2f TFLOPS\n",
				i+1, r.Tile.MTM, r.Tile.MTN, r.Tile.MTK, r.Tile.MIM, r.Tile.MIN, r.Tile.MIK,
				r.LatencyCycles, tflops)
		}
		return nil
	},
}

func init() {
	f := rankCmd.Flags()
	registerHardwareFlags(f, &rankHW)
	registerProblemFlags(f, &rankProblem)
	f.StringArrayVar(&rankTiles, "tile", nil, "candidate macro-tile \"MTM,MTN,MTK,MIM,MIN,MIK\" (repeatable)")
	f.IntVar(&rankTop, "top", 5, "number of top-ranked candidates to print (0 = all)")
}
