package spreads

import (
	"fmt"
	"strconv"

	"github.com/jiaming2012/options-flow/src/eventmodels"
)

const sharesPerContract = 100

// adjustForStockLeg books the equity leg implied by a stock-combined
// condition code: share value and share delta are added to the spread and
// the stock trade is appended to the summary as an extra leg.
func adjustForStockLeg(agg aggregate, legs []eventmodels.OptionTrade) aggregate {
	head := legs[0]
	name := agg.spread.SpreadName
	shares := float64(sharesPerContract * agg.totalContracts)

	var value, delta float64
	var clause string

	switch {
	case name.BuysStock():
		value = shares * head.ImpliedUnderlyingAsk
		delta = shares
		clause = fmt.Sprintf("Bought %d shares of stock at %s|", int(shares), formatPrice(head.ImpliedUnderlyingAsk))
	case name.ShortsStock():
		value = -shares * head.ImpliedUnderlyingBid
		delta = -shares
		clause = fmt.Sprintf("Shorted %d shares of stock at %s|", int(shares), formatPrice(head.ImpliedUnderlyingBid))
	default:
		if name == eventmodels.Collar {
			delta = collarShareDelta(legs, shares)
		}
		clause = fmt.Sprintf("Traded %d shares of stock at %s|", int(shares), formatPrice(head.ImpliedUnderlyingMid))
	}

	agg.spread.NetValue += value
	agg.spread.DeltaWhenOpened += delta
	agg.spread.CurrentDelta += delta
	agg.spread.Summary += clause
	agg.spread.LegNumber++

	return agg
}

// collarShareDelta takes the stock side from the sold option: a sold call
// collars long stock, a sold put collars short stock.
func collarShareDelta(legs []eventmodels.OptionTrade, shares float64) float64 {
	sold, ok := findLeg(legs, eventmodels.OptionTrade.IsSell)
	if !ok {
		return 0
	}

	if sold.IsCall() {
		return shares
	}

	return -shares
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
