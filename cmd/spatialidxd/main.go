// Command spatialidxd runs the spatial index HTTP service standalone,
// the direct descendant of 444lessio-GeoRunner/main.go's single-binary
// gin server.
package main

import (
	"log"

	"github.com/RogerHuauya/utec-eda/internal/config"
	"github.com/RogerHuauya/utec-eda/internal/httpapi"
	"github.com/RogerHuauya/utec-eda/internal/telemetry"
)

func main() {
	logger, err := telemetry.NewLogger()
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.LoadService()
	metrics := telemetry.NewMetrics()

	server := httpapi.New(cfg, logger, metrics)
	if err := server.Run(); err != nil {
		logger.Fatalw("server exited", "error", err)
	}
}
