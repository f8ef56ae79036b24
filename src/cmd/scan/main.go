package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-flow/src/cmd/scan/run"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/scan/main.go --config scan.yaml",
	Short: "Scan the symbol list for large option spreads and trade signals",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		result, err := run.Run(ctx, run.RunArgs{
			GoEnv:       goEnv,
			ProjectsDir: os.Getenv("PROJECTS_DIR"),
			ConfigPath:  configPath,
		})
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if len(result.Large) > 0 {
			fmt.Println(result.Large.Table())
		}

		for _, s := range result.Signals {
			fmt.Printf("%-6s %-4s %6d %6d  $%.2f\n", s.Symbol, s.Side, s.Quantity1, s.Quantity2, s.LargeTraderNetValue)
		}

		log.Infof("Scan %s: %d chains, %d failed, %d files", result.RunID, len(result.Chains), len(result.Failed), len(result.Files))
	},
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("config", "", "Path to the scan config yaml. Defaults are used when empty.")

	runCmd.Execute()
}
