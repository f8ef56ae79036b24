package eventmodels

import (
	"math"
)

// OptionTrade is a single enriched option print. All fields are plain values so
// a trade can be copied freely between grouping buckets.
type OptionTrade struct {
	Root                 string          `json:"root" csv:"root"`
	Symbol               string          `json:"option" csv:"option"`
	Strike               float64         `json:"strike" csv:"strike"`
	Expiry               string          `json:"expiry" csv:"expiry"`
	Dte                  int             `json:"dte" csv:"dte"`
	OptionType           OptionType      `json:"option_type" csv:"option_type"`
	OrderAction          OrderAction     `json:"order_action" csv:"order_action"`
	OptionTradeAt        OptionTradeAt   `json:"option_trade_at" csv:"option_trade_at"`
	ExecutionPrice       ExecutionPrice  `json:"execution_price" csv:"execution_price"`
	Size                 int             `json:"option_trade_size" csv:"option_trade_size"`
	ConditionID          ConditionID     `json:"condition_id" csv:"condition_id"`
	ExchangeID           Exchange        `json:"exchange_id" csv:"exchange_id"`
	SeqNo                int64           `json:"seq_no" csv:"seq_no"`
	ExchangeSeqNo        int64           `json:"exchange_seq_no" csv:"exchange_seq_no"`
	Timestamp            TimeOfDay       `json:"timestamp" csv:"timestamp"`
	Price                float64         `json:"option_trade_price" csv:"option_trade_price"`
	Bid                  float64         `json:"option_bid" csv:"option_bid"`
	Ask                  float64         `json:"option_ask" csv:"option_ask"`
	ImpliedUnderlyingBid float64         `json:"implied_underlying_bid" csv:"implied_underlying_bid"`
	ImpliedUnderlyingAsk float64         `json:"implied_underlying_ask" csv:"implied_underlying_ask"`
	ImpliedUnderlyingMid float64         `json:"implied_underlying_mid" csv:"implied_underlying_mid"`
	Iv                   float64         `json:"iv" csv:"iv"`
	Delta                float64         `json:"delta" csv:"delta"`
	CurrentDelta         float64         `json:"current_delta" csv:"current_delta"`
	TransactionEstimate  TransactionType `json:"transaction_estimate" csv:"transaction_estimate"`
}

// NotionalValue is price x 100 x contracts, rounded to cents and unsigned.
func (t OptionTrade) NotionalValue() float64 {
	return math.Round(t.Price*100*float64(t.Size)*100) / 100
}

// AmountPaid is the notional signed by side: positive when bought, negative when sold.
func (t OptionTrade) AmountPaid() float64 {
	return t.OrderAction.Sign() * t.NotionalValue()
}

func (t OptionTrade) NetIv() float64 {
	return t.OrderAction.Sign() * t.Iv
}

func (t OptionTrade) NetDelta() float64 {
	return t.OrderAction.Sign() * t.Delta * float64(t.Size)
}

func (t OptionTrade) NetCurrentDelta() float64 {
	return t.OrderAction.Sign() * t.CurrentDelta * float64(t.Size)
}

func (t OptionTrade) IsOpening() bool {
	return t.TransactionEstimate.IsOpening()
}

// DealerDelta is the delta the market maker takes on when the print opens a position.
func (t OptionTrade) DealerDelta() float64 {
	if !t.IsOpening() {
		return 0
	}

	return -float64(t.Size) * t.CurrentDelta
}

// NaiveDealerDelta assumes every print with a known side is the dealer's counterparty.
func (t OptionTrade) NaiveDealerDelta() float64 {
	if !t.OrderAction.IsKnown() {
		return 0
	}

	return -float64(t.Size) * t.Delta
}

func (t OptionTrade) IsCall() bool {
	return t.OptionType == Call
}

func (t OptionTrade) IsPut() bool {
	return t.OptionType == Put
}

func (t OptionTrade) IsBuy() bool {
	return t.OrderAction == Bought
}

func (t OptionTrade) IsSell() bool {
	return t.OrderAction == Sold
}

func (t OptionTrade) IsCallBuy() bool {
	return t.IsCall() && t.IsBuy()
}

func (t OptionTrade) IsCallSell() bool {
	return t.IsCall() && t.IsSell()
}

func (t OptionTrade) IsPutBuy() bool {
	return t.IsPut() && t.IsBuy()
}

func (t OptionTrade) IsPutSell() bool {
	return t.IsPut() && t.IsSell()
}
