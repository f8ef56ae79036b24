package eventmodels

// TransactionType is the opening/closing estimate made upstream from open interest.
type TransactionType string

const (
	BuyToOpen         TransactionType = "BuyToOpen"
	SellToOpen        TransactionType = "SellToOpen"
	MaybeBuyToClose   TransactionType = "MaybeBuyToClose"
	MaybeSellToClose  TransactionType = "MaybeSellToClose"
	CouldNotDetermine TransactionType = "CouldNotDetermine"
	Uncalculated      TransactionType = "Uncalculated"
)

func (t TransactionType) IsOpening() bool {
	return t == BuyToOpen || t == SellToOpen
}
