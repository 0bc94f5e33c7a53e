package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/RogerHuauya/utec-eda/internal/seed"
	"github.com/RogerHuauya/utec-eda/internal/telemetry"
	"github.com/RogerHuauya/utec-eda/sstree"
)

var (
	sstreeM    int
	sstreeN    int
	sstreeDim  int
	sstreeSeed int64
)

var sstreeCmd = &cobra.Command{
	Use:   "sstree",
	Short: "SS-tree commands",
}

var sstreeDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build an SS-tree over random embeddings and run a k-NN query",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := telemetry.NewDevelopmentLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		rng := rand.New(rand.NewSource(sstreeSeed))
		tree := sstree.New(sstreeDim, sstreeM, sstree.MedianSplit)

		entries := seed.Embeddings(rng, sstreeN, sstreeDim, 100)
		for _, d := range entries {
			if err := tree.Insert(d); err != nil {
				return err
			}
		}
		log.Infow("sstree seeded", "n", sstreeN, "dim", sstreeDim, "maxEntries", sstreeM)

		query := make(sstree.Vector, sstreeDim)
		const k = 5
		nearest := tree.KNN(query, k)

		log.Infow("k-NN query", "k", k)
		for i, d := range nearest {
			log.Infow("result", "rank", i+1, "path", d.Path, "distance", d.Embedding.Distance(query))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sstreeCmd)
	sstreeCmd.AddCommand(sstreeDemoCmd)

	sstreeDemoCmd.Flags().IntVar(&sstreeM, "m", 20, "Maximum entries per node before a split")
	sstreeDemoCmd.Flags().IntVar(&sstreeN, "n", 500, "Number of random embeddings to seed")
	sstreeDemoCmd.Flags().IntVar(&sstreeDim, "dim", 8, "Embedding dimensionality")
	sstreeDemoCmd.Flags().Int64Var(&sstreeSeed, "seed", 1, "Random seed for embedding generation")
}
