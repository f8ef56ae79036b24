package eventpubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

func TestPublishChainProcessed(t *testing.T) {
	Init()

	var received []string
	require.NoError(t, Subscribe(ChainProcessedEvent, func(summary eventmodels.ChainSummary) {
		received = append(received, summary.Symbol)
	}))

	PublishChainProcessed("test", eventmodels.ChainSummary{Symbol: "SPY"})
	PublishChainProcessed("test", eventmodels.ChainSummary{Symbol: "QQQ"})
	WaitAsync()

	assert.Equal(t, []string{"SPY", "QQQ"}, received)
}

func TestPublishScanCompletedSync(t *testing.T) {
	Init()

	var runID string
	require.NoError(t, SubscribeSync(ScanCompletedEvent, func(ev ScanCompleted) {
		runID = ev.RunID
	}))

	PublishScanCompleted("test", ScanCompleted{RunID: "abc"})
	assert.Equal(t, "abc", runID)
}

func TestSubscribeWithoutInit(t *testing.T) {
	bus = nil
	defer Init()

	assert.ErrorIs(t, Subscribe(ChainProcessedEvent, func(eventmodels.ChainSummary) {}), ErrBusNotInitialized)
	assert.ErrorIs(t, SubscribeSync(ScanCompletedEvent, func(ScanCompleted) {}), ErrBusNotInitialized)

	// publishing is dropped, not a panic
	assert.NotPanics(t, func() { PublishScanCompleted("test", ScanCompleted{RunID: "abc"}) })
}
