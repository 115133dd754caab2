package picker

import "github.com/raphi011/wut/internal/store"

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	// OutcomeConfirmed means the user picked Command; run it in WorkDir.
	OutcomeConfirmed OutcomeKind = iota + 1
	OutcomeCancelled
	// OutcomeEmpty means there was nothing to pick from; no terminal was used.
	OutcomeEmpty
)

// Outcome is the result of Run.
type Outcome struct {
	Kind    OutcomeKind
	Command store.Command
	WorkDir string
}
