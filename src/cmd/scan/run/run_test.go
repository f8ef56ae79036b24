package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-flow/src/eventconsumers"
	"github.com/jiaming2012/options-flow/src/eventmodels"
)

type stubFetcher struct {
	chains map[string]*eventmodels.OptionChainResponseDTO
	trades map[string][]eventmodels.OptionTradeDTO
}

func (f *stubFetcher) FetchOptionChain(ctx context.Context, symbol string, date time.Time) (*eventmodels.OptionChainResponseDTO, error) {
	chain, found := f.chains[symbol]
	if !found {
		return nil, fmt.Errorf("no chain for %s", symbol)
	}

	return chain, nil
}

func (f *stubFetcher) FetchTrades(ctx context.Context, symbol string, limit int) ([]eventmodels.OptionTradeDTO, error) {
	return f.trades[symbol], nil
}

func fp(f float64) *float64 {
	return &f
}

func leg(symbol, option string, strike float64, at eventmodels.OptionTradeAt, price float64, seq int64) eventmodels.OptionTradeDTO {
	return eventmodels.OptionTradeDTO{
		Root:          symbol,
		Option:        option,
		Size:          20,
		Strike:        strike,
		Expiry:        "2030-06-21",
		OptionType:    "C",
		Price:         fp(price),
		Bid:           fp(price - 0.1),
		Ask:           fp(price + 0.1),
		OptionTradeAt: string(at),
		Delta:         0.4,
		ConditionID:   int(eventmodels.ConditionMultLegAutoEx),
		ExchangeID:    int(eventmodels.ExchangeCBOE),
		Timestamp:     "10:15:30.250",
		SeqNo:         seq,
	}
}

func addVertical(f *stubFetcher, symbol string, mid float64) {
	long := symbol + "300621C00050000"
	short := symbol + "300621C00055000"

	f.chains[symbol] = &eventmodels.OptionChainResponseDTO{
		Symbol:               symbol,
		ImpliedUnderlyingMid: fp(mid),
		Options: []eventmodels.OptionQuoteDTO{
			{Option: long, OptionType: "C", Strike: 50, Expiry: "2030-06-21", OpenInterest: 5, Volume: 5, Delta: 0.5},
			{Option: short, OptionType: "C", Strike: 55, Expiry: "2030-06-21", OpenInterest: 5, Volume: 5, Delta: 0.3},
		},
	}

	f.trades[symbol] = []eventmodels.OptionTradeDTO{
		leg(symbol, long, 50, eventmodels.OnAsk, 3.0, 1),
		leg(symbol, short, 55, eventmodels.OnBid, 1.0, 2),
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "reports")

	symbolsFile := filepath.Join(dir, "symbols.csv")
	require.NoError(t, os.WriteFile(symbolsFile, []byte("symbol\nSPY\nQQQ\nAAA\nMISSING\n"), 0644))

	configFile := filepath.Join(dir, "scan.yaml")
	config := fmt.Sprintf("symbols_file: %s\noutput_dir: %s\nlarge_trade_threshold: 1000\nrequests_per_second: 1000\n", symbolsFile, outDir)
	require.NoError(t, os.WriteFile(configFile, []byte(config), 0644))

	fetcher := &stubFetcher{
		chains: map[string]*eventmodels.OptionChainResponseDTO{},
		trades: map[string][]eventmodels.OptionTradeDTO{},
	}
	addVertical(fetcher, "SPY", 500)
	addVertical(fetcher, "QQQ", 400)
	addVertical(fetcher, "AAA", 100)

	result, err := Run(context.Background(), RunArgs{ConfigPath: configFile, Fetcher: fetcher})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.Chains, 3)
	assert.Equal(t, []string{"MISSING"}, result.Failed)

	require.Len(t, result.Large, 3)
	for _, s := range result.Large {
		assert.Equal(t, eventmodels.Vertical, s.SpreadName)
		assert.InDelta(t, 4000.0, s.NetValue, 1e-9)
	}

	var symbols []string
	for _, s := range result.Signals {
		symbols = append(symbols, s.Symbol)
	}
	assert.Contains(t, symbols, "SPY")
	assert.Contains(t, symbols, "QQQ")

	require.Len(t, result.Files, 3)
	for _, f := range result.Files {
		assert.FileExists(t, f)
	}

	assert.Contains(t, filepath.Base(result.Files[0]), signalsReport)
	assert.Contains(t, filepath.Base(result.Files[1]), chainsReport)
	assert.Contains(t, filepath.Base(result.Files[2]), eventconsumers.TradesReport)

	// the trades report is written by the bus subscriber from the processed chains
	report, err := os.ReadFile(result.Files[2])
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(report)), "\n"), 4)
}

func TestRunWithoutBenchmarks(t *testing.T) {
	dir := t.TempDir()

	symbolsFile := filepath.Join(dir, "symbols.csv")
	require.NoError(t, os.WriteFile(symbolsFile, []byte("AAA\n"), 0644))

	configFile := filepath.Join(dir, "scan.yaml")
	config := fmt.Sprintf("symbols_file: %s\noutput_dir: %s\nrequests_per_second: 1000\n", symbolsFile, dir)
	require.NoError(t, os.WriteFile(configFile, []byte(config), 0644))

	fetcher := &stubFetcher{
		chains: map[string]*eventmodels.OptionChainResponseDTO{},
		trades: map[string][]eventmodels.OptionTradeDTO{},
	}
	addVertical(fetcher, "AAA", 100)

	result, err := Run(context.Background(), RunArgs{ConfigPath: configFile, Fetcher: fetcher})
	require.NoError(t, err)

	assert.Empty(t, result.Signals)
	assert.Empty(t, result.Large)
	assert.Len(t, result.Files, 2)
}

func TestRunMissingCredentials(t *testing.T) {
	dir := t.TempDir()

	symbolsFile := filepath.Join(dir, "symbols.csv")
	require.NoError(t, os.WriteFile(symbolsFile, []byte("AAA\n"), 0644))

	configFile := filepath.Join(dir, "scan.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(fmt.Sprintf("symbols_file: %s\n", symbolsFile)), 0644))

	t.Setenv("LIVEVOL_USERNAME", "")
	t.Setenv("LIVEVOL_PASSWORD", "")

	_, err := Run(context.Background(), RunArgs{ConfigPath: configFile})
	assert.Error(t, err)
}
