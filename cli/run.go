package cli

import (
	"github.com/spf13/cobra"

	"github.com/bundleswap/escrow-engine/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run the escrow engine",
		Long:  "Run locks bundles and offers into custody and serves the swap API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)
