package eventmodels

type SpreadName string

const (
	// single leg
	CoveredCall SpreadName = "Covered Call"
	CoveredPut  SpreadName = "Covered Put"
	LongCall    SpreadName = "Long Call"
	ShortCall   SpreadName = "Short Call"
	LongPut     SpreadName = "Long Put"
	ShortPut    SpreadName = "Short Put"

	// two legs
	Vertical      SpreadName = "Vertical"
	Calendar      SpreadName = "Calendar"
	Straddle      SpreadName = "Straddle"
	Strangle      SpreadName = "Strangle"
	RiskReversal  SpreadName = "Risk Reversal"
	Diagonal      SpreadName = "Diagonal"
	Ladder        SpreadName = "Ladder"
	SyntheticCall SpreadName = "Synthetic Call"
	SyntheticPut  SpreadName = "Synthetic Put"
	Collar        SpreadName = "Collar"

	// three legs
	Butterfly           SpreadName = "Butterfly"
	UnbalancedButterfly SpreadName = "Unbalanced Butterfly"

	// four legs
	IronCondor    SpreadName = "Iron Condor"
	IronButterfly SpreadName = "Iron Butterfly"
	Box           SpreadName = "Box"

	// with stock
	Conversion SpreadName = "Conversion"
	Reversal   SpreadName = "Reversal"

	Unrecognized          SpreadName = "Unrecognized"
	UnrecognizedWithStock SpreadName = "Unrecognized With Stock"
)

// BuysStock reports whether the implied equity leg of a stock-combined strategy is a purchase.
func (n SpreadName) BuysStock() bool {
	return n == CoveredCall || n == Conversion || n == SyntheticCall
}

// ShortsStock reports whether the implied equity leg of a stock-combined strategy is a short sale.
func (n SpreadName) ShortsStock() bool {
	return n == CoveredPut || n == Reversal || n == SyntheticPut
}
