package eventmodels

type OrderAction string

const (
	Bought             OrderAction = "Bought"
	Sold               OrderAction = "Sold"
	UnknownOrderAction OrderAction = "Unknown"
)

// Flip swaps the side of a known action. Unknown stays unknown.
func (a OrderAction) Flip() OrderAction {
	switch a {
	case Bought:
		return Sold
	case Sold:
		return Bought
	}

	return UnknownOrderAction
}

// Sign is +1 for bought, -1 for sold and 0 when the side could not be determined.
func (a OrderAction) Sign() float64 {
	switch a {
	case Bought:
		return 1
	case Sold:
		return -1
	}

	return 0
}

func (a OrderAction) IsKnown() bool {
	return a == Bought || a == Sold
}
