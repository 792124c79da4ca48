package session

// RecipeDraft is the transient result of a pipeline run, held until the
// save/confirm flow consumes or discards it.
type RecipeDraft struct {
	Title           string
	Instructions    string
	Ingredients     string
	DistributionRef string
}

// Store keeps one draft per user. It replaces the process-wide scratch
// map the bot grew up with: session-scoped, injected, safe for multiple
// worker instances behind it.
type Store interface {
	PutDraft(userID int64, draft RecipeDraft)
	Draft(userID int64) (RecipeDraft, bool)
	Discard(userID int64)
}
