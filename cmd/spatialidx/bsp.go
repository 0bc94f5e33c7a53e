package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/RogerHuauya/utec-eda/bsptree"
	"github.com/RogerHuauya/utec-eda/geom"
	"github.com/RogerHuauya/utec-eda/internal/seed"
	"github.com/RogerHuauya/utec-eda/internal/telemetry"
)

var (
	bspN    int
	bspSeed int64
)

var bspCmd = &cobra.Command{
	Use:   "bsp",
	Short: "BSP tree commands",
}

var bspDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a BSP tree over random coplanar polygon clusters and fire a collision probe",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := telemetry.NewDevelopmentLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		rng := rand.New(rand.NewSource(bspSeed))
		tree := bsptree.New()

		polygons := seed.Polygons(rng, bspN, 500)
		for _, poly := range polygons {
			tree.Insert(poly)
		}
		log.Infow("bsp tree seeded", "requested", bspN, "accepted", len(polygons), "stored", tree.Root().PolygonCount())

		ray := geom.LineSegment{
			A: geom.Point3D{X: 250, Y: 250, Z: 1000},
			B: geom.Point3D{X: 250, Y: 250, Z: -1000},
		}
		hit := tree.DetectCollision(ray)
		if hit == nil {
			log.Infow("collision probe", "hit", false)
			return nil
		}
		log.Infow("collision probe", "hit", true, "polygonVertices", len(hit.Vertices))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bspCmd)
	bspCmd.AddCommand(bspDemoCmd)

	bspDemoCmd.Flags().IntVar(&bspN, "n", 200, "Number of random polygons to seed")
	bspDemoCmd.Flags().Int64Var(&bspSeed, "seed", 1, "Random seed for polygon generation")
}
