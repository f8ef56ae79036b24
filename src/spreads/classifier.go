package spreads

import (
	"github.com/jiaming2012/options-flow/src/eventmodels"
)

// legShape holds the predicates the classifier branches on, each computed
// once over all legs relative to the first.
type legShape struct {
	sameDate            bool
	sameStrike          bool
	allDifferentStrikes bool
	sameAction          bool
	sameAmount          bool
	sameType            bool
	withStock           bool
	distinctSizes       int
	distinctStrikes     int
}

func shapeOf(legs []eventmodels.OptionTrade) legShape {
	first := legs[0]
	shape := legShape{
		sameDate:            true,
		sameStrike:          true,
		allDifferentStrikes: true,
		sameAction:          true,
		sameAmount:          true,
		withStock:           first.ConditionID.IncludesStockTrade(),
	}

	allCall, allPut := true, true
	sizes := make(map[int]struct{})
	strikes := make(map[float64]struct{})

	for _, leg := range legs {
		shape.sameDate = shape.sameDate && leg.Expiry == first.Expiry
		shape.sameStrike = shape.sameStrike && leg.Strike == first.Strike
		shape.sameAction = shape.sameAction && leg.OrderAction == first.OrderAction
		shape.sameAmount = shape.sameAmount && leg.Size == first.Size
		allCall = allCall && leg.IsCall()
		allPut = allPut && leg.IsPut()

		if _, seen := strikes[leg.Strike]; seen {
			shape.allDifferentStrikes = false
		}

		sizes[leg.Size] = struct{}{}
		strikes[leg.Strike] = struct{}{}
	}

	shape.sameType = allCall || allPut
	shape.distinctSizes = len(sizes)
	shape.distinctStrikes = len(strikes)

	return shape
}

type legPredicate func(eventmodels.OptionTrade) bool

// eitherOrder reports whether one leg satisfies a and the other satisfies b.
func eitherOrder(x, y eventmodels.OptionTrade, a, b legPredicate) bool {
	return (a(x) && b(y)) || (a(y) && b(x))
}

func allLegs(legs []eventmodels.OptionTrade, p legPredicate) bool {
	for _, leg := range legs {
		if !p(leg) {
			return false
		}
	}

	return true
}

func findLeg(legs []eventmodels.OptionTrade, p legPredicate) (eventmodels.OptionTrade, bool) {
	for _, leg := range legs {
		if p(leg) {
			return leg, true
		}
	}

	return eventmodels.OptionTrade{}, false
}

var (
	callBuy  legPredicate = eventmodels.OptionTrade.IsCallBuy
	callSell legPredicate = eventmodels.OptionTrade.IsCallSell
	putBuy   legPredicate = eventmodels.OptionTrade.IsPutBuy
	putSell  legPredicate = eventmodels.OptionTrade.IsPutSell
)

// Classify names the strategy formed by a leg-set. It never fails: shapes it
// does not know map to Unrecognized, or UnrecognizedWithStock when the
// condition code carries an equity leg.
func Classify(legs []eventmodels.OptionTrade) eventmodels.SpreadName {
	if len(legs) == 0 {
		return eventmodels.Unrecognized
	}

	shape := shapeOf(legs)

	switch n := len(legs); {
	case n == 1 && shape.withStock:
		return classifySingleWithStock(legs[0])
	case n == 1:
		return classifySingle(legs[0])
	case n == 2 && shape.withStock:
		return classifyPairWithStock(legs, shape)
	case n == 2:
		return classifyPair(shape)
	case n == 3:
		return classifyTriple(shape)
	case n == 4:
		return classifyQuad(legs, shape)
	default:
		if shape.sameAction && shape.sameType {
			return eventmodels.Ladder
		}

		return eventmodels.Unrecognized
	}
}

func classifySingleWithStock(leg eventmodels.OptionTrade) eventmodels.SpreadName {
	switch {
	case leg.IsCallSell():
		return eventmodels.CoveredCall
	case leg.IsPutSell():
		return eventmodels.CoveredPut
	case leg.IsPutBuy():
		return eventmodels.SyntheticCall
	case leg.IsCallBuy():
		return eventmodels.SyntheticPut
	}

	return eventmodels.UnrecognizedWithStock
}

func classifySingle(leg eventmodels.OptionTrade) eventmodels.SpreadName {
	switch {
	case leg.IsCallBuy():
		return eventmodels.LongCall
	case leg.IsCallSell():
		return eventmodels.ShortCall
	case leg.IsPutBuy():
		return eventmodels.LongPut
	case leg.IsPutSell():
		return eventmodels.ShortPut
	}

	return eventmodels.Unrecognized
}

func classifyPairWithStock(legs []eventmodels.OptionTrade, shape legShape) eventmodels.SpreadName {
	x, y := legs[0], legs[1]

	switch {
	case eitherOrder(x, y, callSell, putBuy):
		if shape.sameStrike {
			return eventmodels.Conversion
		}
		return eventmodels.Collar
	case eitherOrder(x, y, putSell, callBuy):
		if shape.sameStrike {
			return eventmodels.Reversal
		}
		return eventmodels.Collar
	case allLegs(legs, callSell):
		return eventmodels.CoveredCall
	case allLegs(legs, putSell):
		return eventmodels.CoveredPut
	case eitherOrder(x, y, putBuy, putSell):
		return eventmodels.SyntheticCall
	case eitherOrder(x, y, callBuy, callSell):
		return eventmodels.SyntheticPut
	}

	return eventmodels.UnrecognizedWithStock
}

func classifyPair(s legShape) eventmodels.SpreadName {
	switch {
	case !s.sameStrike && s.sameDate && !s.sameAction:
		return eventmodels.Vertical
	case s.sameStrike && !s.sameDate && !s.sameAction:
		return eventmodels.Calendar
	case s.sameStrike && s.sameDate && s.sameAction && !s.sameType:
		return eventmodels.Straddle
	case !s.sameStrike && s.sameDate && s.sameAction && !s.sameType:
		return eventmodels.Strangle
	case !s.sameStrike && s.sameDate && !s.sameAction && !s.sameType:
		return eventmodels.RiskReversal
	case !s.sameStrike && !s.sameDate && !s.sameAction:
		return eventmodels.Diagonal
	case s.sameAction && s.sameType:
		return eventmodels.Ladder
	}

	return eventmodels.Unrecognized
}

func classifyTriple(s legShape) eventmodels.SpreadName {
	switch {
	case !s.sameAction && s.distinctSizes == 2:
		return eventmodels.Butterfly
	case !s.sameAction && !s.sameAmount && s.distinctSizes == 3:
		return eventmodels.UnbalancedButterfly
	case s.sameAction && s.sameType:
		return eventmodels.Ladder
	}

	return eventmodels.Unrecognized
}

func classifyQuad(legs []eventmodels.OptionTrade, s legShape) eventmodels.SpreadName {
	if s.allDifferentStrikes && !s.sameAction && s.sameDate && !s.sameType {
		return eventmodels.IronCondor
	}

	if !s.sameDate || s.sameAction {
		return eventmodels.Unrecognized
	}

	soldCall, hasSoldCall := findLeg(legs, callSell)
	soldPut, hasSoldPut := findLeg(legs, putSell)
	if !hasSoldCall || !hasSoldPut {
		// TODO: four leg structures without both a short call and a short put
		// (e.g. double diagonals) are not named yet.
		return eventmodels.Unrecognized
	}

	switch {
	case soldCall.Strike == soldPut.Strike:
		return eventmodels.IronButterfly
	case s.distinctStrikes == 2:
		return eventmodels.Box
	}

	return eventmodels.Unrecognized
}
