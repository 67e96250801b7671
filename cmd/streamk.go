package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemm-origami/origami/analytical/streamk"
)

var (
	skBlkM, skBlkN, skBlkK int64
	skM, skN, skK, skBatch int64
	skGridStart, skGridEnd int64
	skCoeffsFile           string
)

var streamkCmd = &cobra.Command{
	Use:   "streamk",
	Short: "Select the best Stream-K grid size for a fixed block shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		coeffs := streamk.DefaultCoefficients
		if skCoeffsFile != "" {
			var err error
			coeffs, err = streamk.LoadCoefficients(skCoeffsFile)
			if err != nil {
				return err
			}
		}

		g := streamk.BestPredictedGridSize(skBlkM, skBlkN, skBlkK, skM, skN, skK, skBatch, skGridStart, skGridEnd, coeffs)
		runtime, itersPerCTA, fixupPeers, cachePenalty := streamk.PredictedRuntimeV2(skBlkM, skBlkN, skBlkK, skM, skN, skK, skBatch, g, coeffs)
		fmt.Printf("g=%d runtime=%.3f iters_per_cta=%d fixup_peers=%d cache_penalty=%.3f\n",
			g, runtime, itersPerCTA, fixupPeers, cachePenalty)
		return nil
	},
}

func init() {
	f := streamkCmd.Flags()
	f.Int64Var(&skBlkM, "blk-m", 128, "output tile M block size")
	f.Int64Var(&skBlkN, "blk-n", 128, "output tile N block size")
	f.Int64Var(&skBlkK, "blk-k", 32, "reduction block size")
	f.Int64Var(&skM, "m", 4096, "GEMM M dimension")
	f.Int64Var(&skN, "n", 4096, "GEMM N dimension")
	f.Int64Var(&skK, "k", 4096, "GEMM K dimension")
	f.Int64Var(&skBatch, "batch", 1, "batch count")
	f.Int64Var(&skGridStart, "grid-start", 1, "smallest candidate grid size")
	f.Int64Var(&skGridEnd, "grid-end", 304, "largest candidate grid size, typically the device's CU count")
	f.StringVar(&skCoeffsFile, "coefficients", "", "path to a YAML coefficient override file (default: built-in coefficients)")
}
