package usecase

// Export unexported functions for testing
var (
	NormalizeFeedEventForTest = normalizeFeedEvent
	RefToBranchForTest        = refToBranch
)
