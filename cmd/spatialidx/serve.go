package main

import (
	"github.com/spf13/cobra"

	"github.com/RogerHuauya/utec-eda/internal/config"
	"github.com/RogerHuauya/utec-eda/internal/httpapi"
	"github.com/RogerHuauya/utec-eda/internal/telemetry"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service exposing all three trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := telemetry.NewLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg := config.LoadService()
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		server := httpapi.New(cfg, logger, telemetry.NewMetrics())
		return server.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides SPATIALIDX_ADDR)")
}
