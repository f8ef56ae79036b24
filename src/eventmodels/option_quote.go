package eventmodels

import "time"

// OptionQuoteDTO is one contract of the option-and-underlying-quotes response.
type OptionQuoteDTO struct {
	Option       string   `json:"option"`
	Root         string   `json:"root"`
	OptionType   string   `json:"option_type"`
	Strike       float64  `json:"strike"`
	Expiry       string   `json:"expiry"`
	Bid          *float64 `json:"option_bid"`
	Ask          *float64 `json:"option_ask"`
	Mid          *float64 `json:"option_mid"`
	OpenInterest int      `json:"open_interest"`
	Volume       int      `json:"option_volume"`
	Delta        float64  `json:"delta"`
	Gamma        float64  `json:"gamma"`
	Theta        float64  `json:"theta"`
	Vega         float64  `json:"vega"`
	Iv           float64  `json:"iv"`
}

func (q *OptionQuoteDTO) IsCall() bool {
	t, err := ParseOptionType(q.OptionType)
	return err == nil && t == Call
}

func (q *OptionQuoteDTO) IsPut() bool {
	t, err := ParseOptionType(q.OptionType)
	return err == nil && t == Put
}

// IsValid reports whether the contract has a two sided market, open interest and
// has not yet expired as of asOf.
func (q *OptionQuoteDTO) IsValid(asOf time.Time) bool {
	if q.Bid == nil || q.Ask == nil || *q.Bid <= 0 || *q.Ask <= 0 || q.OpenInterest <= 0 {
		return false
	}

	expiry, err := time.Parse(time.DateOnly, q.Expiry)
	if err != nil {
		return false
	}

	return expiry.After(asOf)
}

type OptionChainResponseDTO struct {
	Symbol               string           `json:"symbol"`
	ImpliedUnderlyingAsk *float64         `json:"implied_underlying_ask"`
	ImpliedUnderlyingBid *float64         `json:"implied_underlying_bid"`
	ImpliedUnderlyingMid *float64         `json:"implied_underlying_mid"`
	UnderlyingAsk        *float64         `json:"underlying_ask"`
	UnderlyingBid        *float64         `json:"underlying_bid"`
	Timestamp            string           `json:"timestamp"`
	Options              []OptionQuoteDTO `json:"options"`
}

// UnderlyingMid prefers the implied mid and falls back to the midpoint of the implied bid and ask.
func (r *OptionChainResponseDTO) UnderlyingMid() float64 {
	if r.ImpliedUnderlyingMid != nil {
		return *r.ImpliedUnderlyingMid
	}

	return 0.5 * (valueOrZero(r.ImpliedUnderlyingAsk) + valueOrZero(r.ImpliedUnderlyingBid))
}

// QuotesBySymbol indexes the chain by option symbol.
func (r *OptionChainResponseDTO) QuotesBySymbol() map[string]OptionQuoteDTO {
	out := make(map[string]OptionQuoteDTO, len(r.Options))
	for _, q := range r.Options {
		out[q.Option] = q
	}

	return out
}
