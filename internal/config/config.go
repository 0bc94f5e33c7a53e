// Package config centralizes the default tuning parameters shared by the
// CLI demo subcommands and the HTTP service, so a bucket size or split
// threshold is only ever defined once.
package config

import (
	"os"
	"strconv"

	"github.com/RogerHuauya/utec-eda/geom"
)

// Defaults mirror the parameters original_source's Google Test fixtures
// seed their trees with (NUM_POINTS=100, MAX_POINTS_PER_NODE=20 for the
// SS-tree; n_polygons=200 for the BSP tree; a bucket size of 4 appears
// throughout the quadtree fixtures).
const (
	DefaultBucketSize       = 4
	DefaultMaxPointsPerNode = 20
	DefaultEmbeddingDim     = 8
	DefaultAddr             = ":8080"
)

// DefaultWorld is the quadtree's world rectangle used when a CLI
// subcommand or the HTTP service doesn't override it.
var DefaultWorld = geom.NewRect(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 1000, Y: 1000})

// Service holds the HTTP service's runtime configuration.
type Service struct {
	Addr             string
	BucketSize       int
	MaxPointsPerNode int
	EmbeddingDim     int
	World            geom.Rect
}

// LoadService builds a Service configuration from environment variables,
// falling back to the package defaults. Recognized variables:
// SPATIALIDX_ADDR, SPATIALIDX_BUCKET_SIZE, SPATIALIDX_MAX_POINTS_PER_NODE,
// SPATIALIDX_EMBEDDING_DIM.
func LoadService() Service {
	return Service{
		Addr:             envOr("SPATIALIDX_ADDR", DefaultAddr),
		BucketSize:       envIntOr("SPATIALIDX_BUCKET_SIZE", DefaultBucketSize),
		MaxPointsPerNode: envIntOr("SPATIALIDX_MAX_POINTS_PER_NODE", DefaultMaxPointsPerNode),
		EmbeddingDim:     envIntOr("SPATIALIDX_EMBEDDING_DIM", DefaultEmbeddingDim),
		World:            DefaultWorld,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
