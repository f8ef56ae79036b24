package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-flow/src/cmd/serve/run"
	"github.com/jiaming2012/options-flow/src/logger"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/serve/main.go --port 8080",
	Short: "Serve spread classification over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		port, err := cmd.Flags().GetString("port")
		if err != nil {
			log.Fatalf("error getting port: %v", err)
		}

		telemetryEnabled, err := cmd.Flags().GetBool("telemetry")
		if err != nil {
			log.Fatalf("error getting telemetry: %v", err)
		}

		logFormat, err := cmd.Flags().GetString("log-format")
		if err != nil {
			log.Fatalf("error getting log-format: %v", err)
		}

		if err := logger.Setup("info", logFormat); err != nil {
			log.Fatalf("error setting up logger: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := run.Run(ctx, run.RunArgs{
			Port:        port,
			Telemetry:   telemetryEnabled,
			ServiceName: "options-flow",
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func main() {
	runCmd.PersistentFlags().String("port", "8080", "The port to listen on.")
	runCmd.PersistentFlags().Bool("telemetry", false, "Export traces and metrics over OTLP.")
	runCmd.PersistentFlags().String("log-format", "json", "text or json.")

	runCmd.Execute()
}
