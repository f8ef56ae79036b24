package eventmodels

type SpreadType string

const (
	Credit            SpreadType = "Credit"
	Debit             SpreadType = "Debit"
	UnknownSpreadType SpreadType = "Unknown"
)

// SpreadTypeFromNetValue returns Debit for a positive net outlay, Credit for a
// net receipt and Unknown when the legs cancel out.
func SpreadTypeFromNetValue(netValue float64) SpreadType {
	if netValue > 0 {
		return Debit
	} else if netValue < 0 {
		return Credit
	}

	return UnknownSpreadType
}
