package spreads

import (
	"fmt"
	"math"
	"sort"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

// GetSpreads reconstructs the multi-leg spreads of one symbol's batch.
// Poisoned spreads are dropped and exact duplicates are removed.
func GetSpreads(trades []eventmodels.OptionTrade) eventmodels.OptionSpreads {
	var out eventmodels.OptionSpreads
	for _, group := range GroupLegs(trades) {
		if spread, ok := BuildSpread(group.Legs); ok {
			out = append(out, spread)
		}
	}

	return dedup(out)
}

func singleLegExpectation(t eventmodels.OptionTrade) eventmodels.Expectation {
	switch {
	case t.IsCallBuy(), t.IsPutSell():
		return eventmodels.Bullish
	case t.IsCallSell(), t.IsPutBuy():
		return eventmodels.Bearish
	}

	return eventmodels.UnknownExpectation
}

// SingleLegSpread projects a stand-alone print onto a one leg spread. The
// second return value is false when the side of the print is unknown.
func SingleLegSpread(t eventmodels.OptionTrade) (eventmodels.OptionSpread, bool) {
	legs := []eventmodels.OptionTrade{t}
	agg := aggregateLegs(classifySingle(t), legs)

	agg.spread.SpreadType = eventmodels.SpreadTypeFromNetValue(agg.spread.NetValue)
	agg.spread.Expectation = singleLegExpectation(t)
	agg.spread.SequenceNumbers = fmt.Sprintf("seq no %d- ex seq no %d", t.SeqNo, t.ExchangeSeqNo)

	return agg.spread, !agg.poisoned
}

// Assemble returns every spread of the batch: multi-leg spreads in the order
// their groups were formed, followed by single leg projections of the
// remaining prints ordered by time and sequence number.
func Assemble(trades []eventmodels.OptionTrade) eventmodels.OptionSpreads {
	out := GetSpreads(trades)

	var singles []eventmodels.OptionTrade
	for _, t := range trades {
		if !t.ConditionID.IsMultiLeg() {
			singles = append(singles, t)
		}
	}

	sort.SliceStable(singles, func(i, j int) bool {
		if singles[i].Timestamp != singles[j].Timestamp {
			return singles[i].Timestamp < singles[j].Timestamp
		}
		return singles[i].SeqNo < singles[j].SeqNo
	})

	for _, t := range singles {
		if spread, ok := SingleLegSpread(t); ok {
			out = append(out, spread)
		}
	}

	return dedup(out)
}

// dedupKey zeroes NaN fields and flags them, so a spread with a NaN value
// still matches its duplicate.
type dedupKey struct {
	spread eventmodels.OptionSpread
	nan    [4]bool
}

func keyOfSpread(spread eventmodels.OptionSpread) dedupKey {
	var key dedupKey
	for i, f := range []*float64{&spread.NetValue, &spread.NetIv, &spread.DeltaWhenOpened, &spread.CurrentDelta} {
		if math.IsNaN(*f) {
			*f = 0
			key.nan[i] = true
		}
	}
	key.spread = spread

	return key
}

// dedup keeps the first occurrence of every structurally identical spread.
func dedup(in eventmodels.OptionSpreads) eventmodels.OptionSpreads {
	seen := make(map[dedupKey]struct{}, len(in))
	out := make(eventmodels.OptionSpreads, 0, len(in))

	for _, spread := range in {
		key := keyOfSpread(spread)
		if _, found := seen[key]; found {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, spread)
	}

	return out
}
