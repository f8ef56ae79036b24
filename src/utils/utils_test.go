package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

func TestRemoveDecimals(t *testing.T) {
	assert.Equal(t, int64(10), RemoveDecimals(10.99))
	assert.Equal(t, int64(-3), RemoveDecimals(-3.7))
	assert.Equal(t, int64(0), RemoveDecimals(1/zero()))
	assert.Equal(t, 1.24, RoundToDecimals(1.2351, 2))
}

func zero() float64 {
	return 0
}

func TestLoadScanConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadScanConfig("")
		require.NoError(t, err)

		assert.Equal(t, eventmodels.DefaultLargeTradeThreshold, cfg.LargeTradeThreshold)
		assert.Equal(t, 10000, cfg.TradesPerSymbol)
		assert.Equal(t, 1.0, cfg.RequestsPerSecond)
		assert.Equal(t, eventmodels.DefaultLivevolBaseURL, cfg.Livevol.BaseURL)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.yaml")
		require.NoError(t, os.WriteFile(path, []byte("large_trade_threshold: 500000\nlog_format: json\ntelemetry:\n  enabled: true\n"), 0644))

		cfg, err := LoadScanConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 500000.0, cfg.LargeTradeThreshold)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "options-flow", cfg.Telemetry.ServiceName)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.yaml")
		require.NoError(t, os.WriteFile(path, []byte("threshold: 1\n"), 0644))

		_, err := LoadScanConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_format: xml\n"), 0644))

		_, err := LoadScanConfig(path)
		assert.True(t, errors.Is(err, eventmodels.ErrInvalidConfig))
	})
}

func TestReadSymbolList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	require.NoError(t, os.WriteFile(path, []byte("Symbol\nspy\nQQQ, ^SPX\n\nSPY\n"), 0644))

	symbols, err := ReadSymbolList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SPY", "QQQ", "^SPX"}, symbols)
}

func TestCsvRoundTrip(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 6, 3, 14, 5, 0, 0, time.UTC)

	trades := []eventmodels.OptionTrade{
		{
			Root:                "SPY",
			Symbol:              "SPY240621C00450000",
			Strike:              450,
			Expiry:              "2024-06-21",
			OptionType:          eventmodels.Call,
			OrderAction:         eventmodels.Bought,
			Size:                10,
			ConditionID:         eventmodels.ConditionMultLegAutoEx,
			ExchangeID:          eventmodels.ExchangeCBOE,
			SeqNo:               7,
			Timestamp:           eventmodels.NewTimeOfDay(10, 0, 0, 125),
			Price:               1.5,
			TransactionEstimate: eventmodels.BuyToOpen,
		},
	}

	path, err := ExportCsv(trades, dir, "ALL-Trades", at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ALL-Trades-2024-06-03-1405.csv"), path)

	loaded, err := ReadTradesCsv(path)
	require.NoError(t, err)
	assert.Equal(t, trades, loaded)

	t.Run("empty input writes nothing", func(t *testing.T) {
		path, err := ExportCsv([]eventmodels.Signal{}, dir, "Trade-Signals", at)
		require.NoError(t, err)
		assert.Empty(t, path)
	})
}
