package eventmodels

// OptionTradeAt is the exchange reported position of the print relative to the quote.
type OptionTradeAt string

const (
	AboveAsk      OptionTradeAt = "Above Ask"
	OnAsk         OptionTradeAt = "On Ask"
	MidMarket     OptionTradeAt = "Mid Market"
	OnBid         OptionTradeAt = "On Bid"
	BelowBid      OptionTradeAt = "Below Bid"
	CrossedMarket OptionTradeAt = "Crossed Market"
	NoMarket      OptionTradeAt = "No Market"
)
