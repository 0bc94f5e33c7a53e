package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spatialidx",
	Short: "spatialidx - BSP tree, quadtree and SS-tree demos and service",
	Long: `spatialidx builds and queries the three spatial indexes of this module
(a BSP tree over convex polygons, a point-region quadtree over moving
particles, and a similarity-search tree over embeddings) from the
command line, and can also run them behind an HTTP service.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
