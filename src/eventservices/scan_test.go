package eventservices

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-flow/src/eventmodels"
	"github.com/jiaming2012/options-flow/src/eventpubsub"
)

type fakeFetcher struct {
	chains map[string]*eventmodels.OptionChainResponseDTO
	trades map[string][]eventmodels.OptionTradeDTO
}

func (f *fakeFetcher) FetchOptionChain(ctx context.Context, symbol string, date time.Time) (*eventmodels.OptionChainResponseDTO, error) {
	chain, found := f.chains[symbol]
	if !found {
		return nil, fmt.Errorf("no chain for %s", symbol)
	}

	return chain, nil
}

func (f *fakeFetcher) FetchTrades(ctx context.Context, symbol string, limit int) ([]eventmodels.OptionTradeDTO, error) {
	return f.trades[symbol], nil
}

func verticalFixture(symbol string, mid float64) (*eventmodels.OptionChainResponseDTO, []eventmodels.OptionTradeDTO) {
	long := fmt.Sprintf("%s240621C00050000", symbol)
	short := fmt.Sprintf("%s240621C00055000", symbol)

	chain := &eventmodels.OptionChainResponseDTO{
		Symbol:               symbol,
		ImpliedUnderlyingMid: fp(mid),
		Options: []eventmodels.OptionQuoteDTO{
			{Option: long, OptionType: "C", Strike: 50, Expiry: "2024-06-21", OpenInterest: 10, Volume: 5, Delta: 0.5},
			{Option: short, OptionType: "C", Strike: 55, Expiry: "2024-06-21", OpenInterest: 10, Volume: 5, Delta: 0.3},
		},
	}

	buy := newTradeDTO(long, "C", 50, eventmodels.OnAsk, 3.0, 2.9, 3.0, 20)
	buy.Root = symbol
	buy.ConditionID = int(eventmodels.ConditionMultLegAutoEx)
	buy.SeqNo = 1

	sell := newTradeDTO(short, "C", 55, eventmodels.OnBid, 1.0, 1.0, 1.1, 20)
	sell.Root = symbol
	sell.ConditionID = int(eventmodels.ConditionMultLegAutoEx)
	sell.SeqNo = 2

	return chain, []eventmodels.OptionTradeDTO{buy, sell}
}

func TestProcessSymbol(t *testing.T) {
	chain, dtos := verticalFixture("XYZ", 52)
	fetcher := &fakeFetcher{
		chains: map[string]*eventmodels.OptionChainResponseDTO{"XYZ": chain, "EMPTY": {Symbol: "EMPTY"}},
		trades: map[string][]eventmodels.OptionTradeDTO{"XYZ": dtos},
	}

	params := ScanParams{TradesPerSymbol: 100, Summary: SummaryParams{LargeTradeThreshold: 1000, AccountAmount: 25000}}

	t.Run("vertical", func(t *testing.T) {
		summary, err := ProcessSymbol(context.Background(), fetcher, "XYZ", params, asOf)
		require.NoError(t, err)

		require.Len(t, summary.Spreads, 1)
		spread := summary.Spreads[0]
		assert.Equal(t, eventmodels.Vertical, spread.SpreadName)
		assert.InDelta(t, 4000.0, spread.NetValue, 1e-9)
		assert.Equal(t, 1, summary.SpreadCount)
		assert.InDelta(t, 4000.0, summary.LargeTraderNetValue, 1e-9)
		assert.Equal(t, int64(48), summary.SharesToTrade)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := ProcessSymbol(context.Background(), fetcher, "EMPTY", params, asOf)
		assert.True(t, errors.Is(err, eventmodels.ErrEmptyBatch))
	})

	t.Run("fetch error", func(t *testing.T) {
		_, err := ProcessSymbol(context.Background(), fetcher, "NOPE", params, asOf)
		assert.Error(t, err)
	})
}

func TestScannerRun(t *testing.T) {
	eventpubsub.Init()

	var published []string
	require.NoError(t, eventpubsub.SubscribeSync(eventpubsub.ChainProcessedEvent, func(summary eventmodels.ChainSummary) {
		published = append(published, summary.Symbol)
	}))

	aaaChain, aaaTrades := verticalFixture("AAA", 100)
	bbbChain, bbbTrades := verticalFixture("BBB", 20)

	fetcher := &fakeFetcher{
		chains: map[string]*eventmodels.OptionChainResponseDTO{"AAA": aaaChain, "BBB": bbbChain},
		trades: map[string][]eventmodels.OptionTradeDTO{"AAA": aaaTrades, "BBB": bbbTrades},
	}

	scanner, err := NewScanner(fetcher, ScanParams{
		TradesPerSymbol: 100,
		Summary:         SummaryParams{LargeTradeThreshold: 1000, AccountAmount: 25000},
	})
	require.NoError(t, err)

	result, err := scanner.Run(context.Background(), []string{"AAA", "ERR", "BBB"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.RunID)
	assert.Equal(t, []string{"ERR"}, result.Failed)
	require.Len(t, result.Chains, 2)
	assert.GreaterOrEqual(t, result.Chains[0].Bias, result.Chains[1].Bias)
	assert.Equal(t, []string{"AAA", "BBB"}, published)

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		limited, err := NewScanner(fetcher, ScanParams{RequestsPerSecond: 0.001})
		require.NoError(t, err)

		_, err = limited.Run(ctx, []string{"AAA", "BBB"})
		assert.Error(t, err)
	})
}
