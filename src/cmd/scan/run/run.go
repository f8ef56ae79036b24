package run

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-flow/src/eventconsumers"
	"github.com/jiaming2012/options-flow/src/eventmodels"
	"github.com/jiaming2012/options-flow/src/eventpubsub"
	"github.com/jiaming2012/options-flow/src/eventservices"
	"github.com/jiaming2012/options-flow/src/logger"
	"github.com/jiaming2012/options-flow/src/telemetry"
	"github.com/jiaming2012/options-flow/src/utils"
)

const (
	signalsReport = "Trade-Signals"
	chainsReport  = "ALL-ChainData"
)

type RunArgs struct {
	GoEnv       string
	ProjectsDir string
	ConfigPath  string

	// Fetcher overrides the livevol client.
	Fetcher eventservices.MarketDataFetcher
}

type RunResult struct {
	RunID   string
	Chains  []eventmodels.ChainSummary
	Signals []eventmodels.Signal
	Failed  []string
	Files   []string
	Large   eventmodels.OptionSpreads
}

func newLivevolClient(args RunArgs, cfg *eventmodels.ScanConfigYAML) (*eventservices.LivevolClient, error) {
	if args.ProjectsDir != "" {
		if err := utils.InitEnvironmentVariables(args.ProjectsDir, args.GoEnv); err != nil {
			log.Warnf("newLivevolClient: %v", err)
		}
	}

	username, err := utils.GetEnv("LIVEVOL_USERNAME")
	if err != nil {
		return nil, fmt.Errorf("newLivevolClient: %w", err)
	}

	password, err := utils.GetEnv("LIVEVOL_PASSWORD")
	if err != nil {
		return nil, fmt.Errorf("newLivevolClient: %w", err)
	}

	return eventservices.NewLivevolClient(cfg.Livevol, username, password), nil
}

func Run(ctx context.Context, args RunArgs) (result RunResult, err error) {
	cfg, err := utils.LoadScanConfig(args.ConfigPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, otelErr := telemetry.SetupOTelSDK(ctx, cfg.Telemetry.ServiceName)
		if otelErr != nil {
			return RunResult{}, fmt.Errorf("Run: %w", otelErr)
		}

		defer func() {
			err = errors.Join(err, shutdown(context.Background()))
		}()

		telemetry.InstrumentLogrus()
	}

	symbols, err := utils.ReadSymbolList(cfg.SymbolsFile)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	fetcher := args.Fetcher
	if fetcher == nil {
		client, err := newLivevolClient(args, cfg)
		if err != nil {
			return RunResult{}, fmt.Errorf("Run: %w", err)
		}
		fetcher = client
	}

	now := time.Now()

	eventpubsub.Init()

	collector := eventconsumers.NewSpreadsCollector(cfg.LargeTradeThreshold, cfg.TopTrades, cfg.OutputDir, now)
	if err := collector.Start(); err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	scanner, err := eventservices.NewScanner(fetcher, eventservices.ScanParams{
		TradesPerSymbol:   cfg.TradesPerSymbol,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Summary: eventservices.SummaryParams{
			LargeTradeThreshold: cfg.LargeTradeThreshold,
			AccountAmount:       cfg.AccountAmount,
		},
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	log.Infof("Scanning %d symbols", len(symbols))

	scan, err := scanner.Run(ctx, symbols)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	result = RunResult{
		RunID:  scan.RunID.String(),
		Chains: scan.Chains,
		Failed: scan.Failed,
	}

	result.Signals, err = eventservices.GetSignals(scan.Chains, cfg.SignalQuantity1, cfg.SignalQuantity2)
	if err != nil {
		if !errors.Is(err, eventmodels.ErrMissingBenchmark) {
			return result, fmt.Errorf("Run: %w", err)
		}

		log.Warnf("Run: no signals: %v", err)
	}

	for _, export := range []func() (string, error){
		func() (string, error) { return utils.ExportCsv(result.Signals, cfg.OutputDir, signalsReport, now) },
		func() (string, error) { return utils.ExportCsv(scan.Chains, cfg.OutputDir, chainsReport, now) },
	} {
		file, err := export()
		if err != nil {
			return result, fmt.Errorf("Run: %w", err)
		}

		if file != "" {
			result.Files = append(result.Files, file)
		}
	}

	// chain handlers run async; drain them before the report is written
	eventpubsub.WaitAsync()

	eventpubsub.PublishScanCompleted("ScanRun", eventpubsub.ScanCompleted{
		RunID:   result.RunID,
		Chains:  result.Chains,
		Signals: result.Signals,
	})

	result.Large = collector.Large()

	file, err := collector.Report()
	if err != nil {
		return result, fmt.Errorf("Run: %w", err)
	}

	if file != "" {
		result.Files = append(result.Files, file)
	}

	return result, nil
}
