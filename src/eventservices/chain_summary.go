package eventservices

import (
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/options-flow/src/eventmodels"
	"github.com/jiaming2012/options-flow/src/utils"
)

const (
	symbolDateFormat    = "%s-%d-%d-%d"
	summaryDateLayout   = "01/02/06"
	dataTimestampLayout = "_2-Jan-2006 03:04:05 PM MST"
)

type SummaryParams struct {
	LargeTradeThreshold float64
	AccountAmount       float64
}

// ratio returns 0 instead of Inf/NaN when the denominator is empty.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

func signScore(v float64, zeroCounts bool) int {
	if v > 0 {
		return 1
	} else if v < 0 || zeroCounts {
		return -1
	}

	return 0
}

func medianAbsNetValue(spreads eventmodels.OptionSpreads) float64 {
	values := make(stats.Float64Data, 0, len(spreads))
	for _, s := range spreads {
		values = append(values, math.Abs(s.NetValue))
	}

	median, err := stats.Median(values)
	if err != nil {
		return 0
	}

	return utils.RoundToDecimals(median, 2)
}

// SummarizeChain reduces one symbol's chain snapshot, enriched trades and
// reconstructed spreads to its positioning summary.
func SummarizeChain(chain *eventmodels.OptionChainResponseDTO, trades []eventmodels.OptionTrade, spreads eventmodels.OptionSpreads, params SummaryParams, asOf time.Time) (eventmodels.ChainSummary, error) {
	if chain == nil {
		return eventmodels.ChainSummary{}, fmt.Errorf("SummarizeChain: missing chain")
	}

	summary := eventmodels.ChainSummary{
		Symbol:        chain.Symbol,
		SymbolDate:    fmt.Sprintf(symbolDateFormat, chain.Symbol, int(asOf.Month()), asOf.Day(), asOf.Year()),
		Date:          asOf.Format(summaryDateLayout),
		DataTimestamp: asOf.Format(dataTimestampLayout),
		UnderlyingMid: chain.UnderlyingMid(),
		Spreads:       spreads,
		SpreadCount:   len(spreads),
	}

	var callOI, putOI, callVolume, putVolume int
	for _, q := range chain.Options {
		if q.IsCall() {
			callOI += q.OpenInterest
			callVolume += q.Volume
		} else if q.IsPut() {
			putOI += q.OpenInterest
			putVolume += q.Volume
		}
	}

	summary.PutCallOIRatio = ratio(putOI, callOI)
	summary.PutCallVolumeRatio = ratio(putVolume, callVolume)

	for _, t := range trades {
		summary.DealerDelta += t.DealerDelta()
		summary.NaiveDealerDelta += t.NaiveDealerDelta()
	}

	for _, s := range spreads.Larger(params.LargeTradeThreshold) {
		summary.LargeTraderDelta += s.CurrentDelta
		summary.LargeTraderAbsoluteValue += math.Abs(s.NetValue)
		summary.LargeTraderNetValue += s.NetValue
		if s.OpeningTrade {
			summary.LargeTraderOpeningDelta += s.CurrentDelta
			summary.LargeTraderOpeningNetValue += s.NetValue
			summary.LargeTraderOpeningAbsoluteValue += math.Abs(s.NetValue)
		}
	}

	summary.LargeTraderExpectation = eventmodels.ExpectationFromDelta(summary.LargeTraderOpeningDelta)

	if summary.PutCallVolumeRatio > 1 {
		summary.Bias++
	} else {
		summary.Bias--
	}

	summary.Bias += signScore(summary.DealerDelta, true)
	summary.Bias += signScore(summary.NaiveDealerDelta, true)
	summary.Bias += signScore(summary.LargeTraderDelta, false)
	summary.Bias += signScore(summary.LargeTraderOpeningDelta, false)

	if !summary.IsIndex() {
		summary.SharesToTrade = utils.RemoveDecimals((params.AccountAmount / 10) / summary.UnderlyingMid)
	}

	summary.MedianSpreadValue = medianAbsNetValue(spreads)

	return summary, nil
}
