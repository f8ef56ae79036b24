package eventservices

import (
	"fmt"
	"sort"

	"github.com/jiaming2012/options-flow/src/eventmodels"
	"github.com/jiaming2012/options-flow/src/utils"
)

const (
	signalsPerSide = 4
	biasThreshold  = 2
)

var indexGroups = []struct {
	benchmark string
	members   []string
}{
	{benchmark: "SPY", members: []string{"SPY", "^SPX"}},
	{benchmark: "QQQ", members: []string{"QQQ", "^NDX"}},
}

func newSignal(symbol string, netValue, price, quantity1, quantity2 float64) eventmodels.Signal {
	side := eventmodels.Sell
	if netValue > 0 {
		side = eventmodels.Buy
	}

	return eventmodels.Signal{
		Symbol:              symbol,
		Side:                side,
		Quantity1:           utils.RemoveDecimals(quantity1 / price),
		Quantity2:           utils.RemoveDecimals(quantity2 / price),
		LargeTraderNetValue: netValue,
	}
}

func isIndexMember(symbol string) bool {
	for _, g := range indexGroups {
		for _, m := range g.members {
			if m == symbol {
				return true
			}
		}
	}

	return false
}

// GetSignals turns a scan into buy/sell signals. Single names qualify when the
// large trader net value agrees with a bias beyond the threshold; SPY and QQQ
// always get a signal built from their index group. The strongest buys and
// sells are returned, strongest buy first.
func GetSignals(chains []eventmodels.ChainSummary, quantity1, quantity2 float64) ([]eventmodels.Signal, error) {
	bySymbol := make(map[string]eventmodels.ChainSummary, len(chains))
	for _, c := range chains {
		bySymbol[c.Symbol] = c
	}

	var signals []eventmodels.Signal

	for _, c := range chains {
		if isIndexMember(c.Symbol) {
			continue
		}

		if (c.LargeTraderNetValue > 0 && c.Bias > biasThreshold) || (c.LargeTraderNetValue < 0 && c.Bias < -biasThreshold) {
			signals = append(signals, newSignal(c.Symbol, c.LargeTraderNetValue, c.UnderlyingMid, quantity1, quantity2))
		}
	}

	for _, g := range indexGroups {
		benchmark, found := bySymbol[g.benchmark]
		if !found {
			return nil, fmt.Errorf("GetSignals: %s: %w", g.benchmark, eventmodels.ErrMissingBenchmark)
		}

		net := 0.0
		for _, m := range g.members {
			net += bySymbol[m].LargeTraderNetValue
		}

		signals = append(signals, newSignal(g.benchmark, net, benchmark.UnderlyingMid, quantity1, quantity2))
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].LargeTraderNetValue > signals[j].LargeTraderNetValue
	})

	out := make([]eventmodels.Signal, 0, 2*signalsPerSide)
	seen := map[string]struct{}{}

	pick := func(s eventmodels.Signal) {
		if _, dup := seen[s.Symbol]; dup {
			return
		}
		seen[s.Symbol] = struct{}{}
		out = append(out, s)
	}

	for i := 0; i < len(signals) && i < signalsPerSide; i++ {
		pick(signals[i])
	}

	for i := 0; i < signalsPerSide && i < len(signals); i++ {
		pick(signals[len(signals)-1-i])
	}

	return out, nil
}
