package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hydrate",
	Short: "Hydration dashboard with a calendar heatmap",
	Long: `hydrate shows a year of water intake as a calendar heatmap.

Serve the web dashboard, render the heatmap in the terminal, and manage the
local cache of backend responses.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
