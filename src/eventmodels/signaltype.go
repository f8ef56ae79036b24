package eventmodels

type SignalType string

const (
	Buy  SignalType = "Buy"
	Sell SignalType = "Sell"
)
