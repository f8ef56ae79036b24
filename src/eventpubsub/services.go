package eventpubsub

import (
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

// ScanCompleted is published once per scan run.
type ScanCompleted struct {
	RunID   string
	Chains  []eventmodels.ChainSummary
	Signals []eventmodels.Signal
}

func PublishChainProcessed(publisherName string, summary eventmodels.ChainSummary) {
	log.WithFields(log.Fields{
		"publisher": publisherName,
		"symbol":    summary.Symbol,
		"spreads":   summary.SpreadCount,
	}).Debug("publishing chain")

	Publish(ChainProcessedEvent, summary)
}

func PublishScanCompleted(publisherName string, event ScanCompleted) {
	log.WithFields(log.Fields{
		"publisher": publisherName,
		"run_id":    event.RunID,
		"chains":    len(event.Chains),
	}).Debug("publishing scan result")

	Publish(ScanCompletedEvent, event)
}
