package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-flow/src/cmd/classify/run"
	"github.com/jiaming2012/options-flow/src/logger"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/classify/main.go --input trades.json",
	Short: "Reconstruct and classify spreads from an enriched trade batch",
	Run: func(cmd *cobra.Command, args []string) {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			log.Fatalf("error getting input: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		threshold, err := cmd.Flags().GetFloat64("threshold")
		if err != nil {
			log.Fatalf("error getting threshold: %v", err)
		}

		singleLegs, err := cmd.Flags().GetBool("singleLegs")
		if err != nil {
			log.Fatalf("error getting singleLegs: %v", err)
		}

		logLevel, err := cmd.Flags().GetString("log-level")
		if err != nil {
			log.Fatalf("error getting log-level: %v", err)
		}

		if err := logger.Setup(logLevel, "text"); err != nil {
			log.Fatalf("error setting up logger: %v", err)
		}

		result, err := run.Run(run.RunArgs{
			InputPath:  input,
			OutDir:     outDir,
			Threshold:  threshold,
			SingleLegs: singleLegs,
		})
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Println(result.Spreads.Table())

		if result.File != "" {
			fmt.Printf("Exported to %s\n", result.File)
		}
	},
}

func main() {
	runCmd.PersistentFlags().String("input", "", "Enriched trades, .json or .csv.")
	runCmd.PersistentFlags().String("outDir", "", "The directory to write the spreads csv to.")
	runCmd.PersistentFlags().Float64("threshold", 0, "Only keep spreads with an absolute net value above this.")
	runCmd.PersistentFlags().Bool("singleLegs", true, "Include single leg prints.")
	runCmd.PersistentFlags().String("log-level", "info", "The log level.")

	runCmd.MarkPersistentFlagRequired("input")

	runCmd.Execute()
}
