// @title ETL Designer API
// @version 1.0
// @description Compose drop/filter/aggregate steps over an uploaded CSV and generate the equivalent pandas script.
// @host localhost:8080
// @BasePath /api/v1
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "etl-designer",
		Short:         "Compose tabular ETL steps and generate a pandas script",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newGenerateCmd(), newRenderCmd())
	return root
}
