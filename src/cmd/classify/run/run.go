package run

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-flow/src/eventmodels"
	"github.com/jiaming2012/options-flow/src/spreads"
	"github.com/jiaming2012/options-flow/src/utils"
)

const spreadsReport = "Spreads"

type RunArgs struct {
	InputPath  string
	OutDir     string
	Threshold  float64
	SingleLegs bool
}

type RunResult struct {
	Spreads eventmodels.OptionSpreads
	File    string
}

func readTradesJSON(path string) ([]eventmodels.OptionTrade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("readTradesJSON: %w", err)
	}

	var trades []eventmodels.OptionTrade
	if err := json.Unmarshal(data, &trades); err != nil {
		return nil, fmt.Errorf("readTradesJSON: failed to decode %s: %w", path, err)
	}

	return trades, nil
}

// ReadTrades loads an enriched trade batch, picking the decoder from the file extension.
func ReadTrades(path string) ([]eventmodels.OptionTrade, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return readTradesJSON(path)
	case ".csv":
		return utils.ReadTradesCsv(path)
	}

	return nil, fmt.Errorf("ReadTrades: unsupported file type: %s", path)
}

func Run(args RunArgs) (RunResult, error) {
	trades, err := ReadTrades(args.InputPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("Run: %w", err)
	}

	if len(trades) == 0 {
		return RunResult{}, fmt.Errorf("Run: %s: %w", args.InputPath, eventmodels.ErrEmptyBatch)
	}

	var out eventmodels.OptionSpreads
	if args.SingleLegs {
		out = spreads.Assemble(trades)
	} else {
		out = spreads.GetSpreads(trades)
	}

	if args.Threshold > 0 {
		out = out.Larger(args.Threshold)
	}

	log.Infof("Classified %d trades into %d spreads", len(trades), len(out))

	result := RunResult{Spreads: out}

	if args.OutDir != "" {
		file, err := utils.ExportCsv(out, args.OutDir, spreadsReport, time.Now())
		if err != nil {
			return result, fmt.Errorf("Run: %w", err)
		}
		result.File = file
	}

	return result, nil
}
