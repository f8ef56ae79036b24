package eventmodels

type ExecutionPrice string

const (
	CloserToBid           ExecutionPrice = "CloserToBid"
	CloserToAsk           ExecutionPrice = "CloserToAsk"
	ExactMidPrice         ExecutionPrice = "ExactMidPrice"
	UnknownExecutionPrice ExecutionPrice = "Unknown"
)
