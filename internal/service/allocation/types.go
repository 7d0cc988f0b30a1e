package allocation

// Result is the outcome of one allocation decision as seen by the
// caller. Already is true when the entry had spun before and the
// committed prize is being replayed.
type Result struct {
	Prize   string
	Day     string
	Already bool
}
