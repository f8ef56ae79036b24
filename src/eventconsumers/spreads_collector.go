package eventconsumers

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-flow/src/eventmodels"
	pubsub "github.com/jiaming2012/options-flow/src/eventpubsub"
	"github.com/jiaming2012/options-flow/src/utils"
)

const TradesReport = "ALL-Trades"

// SpreadsCollector gathers the spreads of every processed chain and writes
// the trades report when the scan completes.
type SpreadsCollector struct {
	mu        sync.Mutex
	threshold float64
	topTrades int
	outDir    string
	at        time.Time
	spreads   eventmodels.OptionSpreads
	report    string
	reportErr error
}

func NewSpreadsCollector(threshold float64, topTrades int, outDir string, at time.Time) *SpreadsCollector {
	return &SpreadsCollector{
		threshold: threshold,
		topTrades: topTrades,
		outDir:    outDir,
		at:        at,
	}
}

func (w *SpreadsCollector) handleChainProcessed(summary eventmodels.ChainSummary) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.spreads = append(w.spreads, summary.Spreads...)
	log.Debugf("SpreadsCollector: %s added %d spreads", summary.Symbol, len(summary.Spreads))
}

func (w *SpreadsCollector) handleScanCompleted(ev pubsub.ScanCompleted) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.report, w.reportErr = utils.ExportCsv(w.spreads.TopByValue(w.topTrades), w.outDir, TradesReport, w.at)
	if w.reportErr != nil {
		log.WithError(w.reportErr).Errorf("SpreadsCollector: run %s", ev.RunID)
	}
}

// Large returns the collected spreads above the threshold, largest first.
func (w *SpreadsCollector) Large() eventmodels.OptionSpreads {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.spreads.Larger(w.threshold).TopByValue(len(w.spreads))
}

// Report returns the trades report path, empty when there was nothing to write.
func (w *SpreadsCollector) Report() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.report, w.reportErr
}

func (w *SpreadsCollector) Start() error {
	if err := pubsub.Subscribe(pubsub.ChainProcessedEvent, w.handleChainProcessed); err != nil {
		return fmt.Errorf("SpreadsCollector.Start: %w", err)
	}

	if err := pubsub.SubscribeSync(pubsub.ScanCompletedEvent, w.handleScanCompleted); err != nil {
		return fmt.Errorf("SpreadsCollector.Start: %w", err)
	}

	return nil
}
