package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/RogerHuauya/utec-eda/internal/config"
	"github.com/RogerHuauya/utec-eda/internal/seed"
	"github.com/RogerHuauya/utec-eda/internal/telemetry"
	"github.com/RogerHuauya/utec-eda/quadtree"
)

var (
	quadtreeBucketSize int
	quadtreeN          int
	quadtreeSeed       int64
)

var quadtreeCmd = &cobra.Command{
	Use:   "quadtree",
	Short: "Quadtree commands",
}

var quadtreeDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a quadtree over random particles and run a k-NN query",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := telemetry.NewDevelopmentLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		rng := rand.New(rand.NewSource(quadtreeSeed))
		tree := quadtree.New(config.DefaultWorld, quadtreeBucketSize)

		particles := seed.Particles(rng, config.DefaultWorld, quadtreeN)
		accepted := tree.Insert(particles...)
		log.Infow("quadtree seeded", "requested", quadtreeN, "accepted", accepted, "bucketSize", quadtreeBucketSize)

		query := config.DefaultWorld.Center()
		const k = 5
		nearest := tree.KNN(query, k)

		log.Infow("k-NN query", "query", query, "k", k)
		for i, p := range nearest {
			log.Infow("result", "rank", i+1, "position", p.Position, "distance", query.Distance(p.Position))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quadtreeCmd)
	quadtreeCmd.AddCommand(quadtreeDemoCmd)

	quadtreeDemoCmd.Flags().IntVar(&quadtreeBucketSize, "bucket-size", config.DefaultBucketSize, "Maximum particles per leaf before subdivision")
	quadtreeDemoCmd.Flags().IntVar(&quadtreeN, "n", 2000, "Number of random particles to seed")
	quadtreeDemoCmd.Flags().Int64Var(&quadtreeSeed, "seed", 1, "Random seed for particle generation")
}
