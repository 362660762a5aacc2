package chat

import "time"

// --- UseCase Inputs ---

type CompleteInput struct {
	Message string
}

// --- UseCase Outputs ---

type CompleteOutput struct {
	Reply       string
	Model       string
	Duration    time.Duration
	TotalTokens int
}
