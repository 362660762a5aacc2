package usecase

// Log prefixes
const (
	LogPrefixComplete = "internal.chat.usecase.Complete"
	LogPrefixReset    = "internal.chat.usecase.Reset"
)
