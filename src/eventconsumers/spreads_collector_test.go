package eventconsumers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-flow/src/eventmodels"
	pubsub "github.com/jiaming2012/options-flow/src/eventpubsub"
)

func chain(symbol string, values ...float64) eventmodels.ChainSummary {
	summary := eventmodels.ChainSummary{Symbol: symbol}
	for _, v := range values {
		summary.Spreads = append(summary.Spreads, eventmodels.OptionSpread{Symbol: symbol, SpreadName: eventmodels.Vertical, NetValue: v})
	}
	summary.SpreadCount = len(summary.Spreads)

	return summary
}

func TestSpreadsCollector(t *testing.T) {
	t.Run("collects processed chains and writes the trades report", func(t *testing.T) {
		pubsub.Init()

		dir := t.TempDir()
		at := time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)

		collector := NewSpreadsCollector(1000, 2, dir, at)
		require.NoError(t, collector.Start())

		pubsub.PublishChainProcessed("test", chain("AAA", 4000, 500))
		pubsub.PublishChainProcessed("test", chain("BBB", -2500))
		pubsub.WaitAsync()

		large := collector.Large()
		require.Len(t, large, 2)
		assert.Equal(t, 4000.0, large[0].NetValue)
		assert.Equal(t, -2500.0, large[1].NetValue)

		file, err := collector.Report()
		require.NoError(t, err)
		assert.Empty(t, file)

		pubsub.PublishScanCompleted("test", pubsub.ScanCompleted{RunID: "run-1"})

		file, err = collector.Report()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ALL-Trades-2024-06-03-1500.csv"), file)
		assert.FileExists(t, file)
	})

	t.Run("no spreads writes no report", func(t *testing.T) {
		pubsub.Init()

		collector := NewSpreadsCollector(1000, 10, t.TempDir(), time.Now())
		require.NoError(t, collector.Start())

		pubsub.PublishScanCompleted("test", pubsub.ScanCompleted{RunID: "run-2"})

		file, err := collector.Report()
		require.NoError(t, err)
		assert.Empty(t, file)
		assert.Empty(t, collector.Large())
	})
}
