package eventpubsub

const (
	ChainProcessedEvent = "ChainProcessedEvent"
	ScanCompletedEvent  = "ScanCompletedEvent"
)
