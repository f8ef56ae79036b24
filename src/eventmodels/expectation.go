package eventmodels

type Expectation string

const (
	Bullish            Expectation = "Bullish"
	Bearish            Expectation = "Bearish"
	Neutral            Expectation = "Neutral"
	UnknownExpectation Expectation = "Unknown"
)

// ExpectationFromDelta maps the sign of a net delta to a market view.
func ExpectationFromDelta(delta float64) Expectation {
	if delta > 0 {
		return Bullish
	} else if delta < 0 {
		return Bearish
	}

	return Neutral
}
