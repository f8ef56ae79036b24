package spreads

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

type aggregate struct {
	spread         eventmodels.OptionSpread
	totalContracts int
	poisoned       bool
}

func legClause(leg eventmodels.OptionTrade) string {
	return fmt.Sprintf("%s %d of the %s %s %s|",
		leg.OrderAction, leg.Size, strconv.FormatFloat(leg.Strike, 'f', -1, 64), leg.Expiry, leg.OptionType.Label())
}

// aggregateLegs folds the legs into the numeric and text fields of a spread.
// Spread type and expectation are left for the caller, since a stock leg
// still has to be applied.
func aggregateLegs(name eventmodels.SpreadName, legs []eventmodels.OptionTrade) aggregate {
	head := legs[0]
	out := aggregate{
		spread: eventmodels.OptionSpread{
			Symbol:          head.Root,
			SpreadName:      name,
			Timestamp:       head.Timestamp,
			ConditionID:     head.ConditionID,
			Exchange:        head.ExchangeID,
			LegNumber:       len(legs),
			SequenceNumbers: sequenceTrail(legs),
		},
	}

	summary := &strings.Builder{}
	for _, leg := range legs {
		out.spread.NetValue += leg.AmountPaid()
		out.spread.NetIv += leg.NetIv()
		out.spread.DeltaWhenOpened += leg.NetDelta()
		out.spread.CurrentDelta += leg.NetCurrentDelta()
		out.spread.OpeningTrade = out.spread.OpeningTrade || leg.IsOpening()

		if leg.Dte > out.spread.Dte {
			out.spread.Dte = leg.Dte
		}

		// ISO dates order lexically
		if leg.Expiry > out.spread.ExpirationDate {
			out.spread.ExpirationDate = leg.Expiry
		}

		summary.WriteString(legClause(leg))
		out.totalContracts += leg.Size
		out.poisoned = out.poisoned || !leg.OrderAction.IsKnown()
	}

	out.spread.Summary = summary.String()
	return out
}

// BuildSpread classifies one leg-set and folds it into a spread. The second
// return value is false when any leg has an unknown side.
func BuildSpread(legs []eventmodels.OptionTrade) (eventmodels.OptionSpread, bool) {
	if len(legs) == 0 {
		return eventmodels.OptionSpread{}, false
	}

	name := Classify(legs)
	agg := aggregateLegs(name, legs)

	if legs[0].ConditionID.IncludesStockTrade() {
		agg = adjustForStockLeg(agg, legs)
	}

	agg.spread.SpreadType = eventmodels.SpreadTypeFromNetValue(agg.spread.NetValue)
	agg.spread.Expectation = eventmodels.ExpectationFromDelta(agg.spread.DeltaWhenOpened)

	return agg.spread, !agg.poisoned
}
