package entitlement

import "github.com/revisit-app/revisit/internal/models"

// Decision is the outcome of checking a save attempt against the plan.
type Decision int

const (
	// Allow means the save may proceed.
	Allow Decision = iota
	// Warn means the save is aborted once with a non-blocking upsell; the
	// next attempt goes through.
	Warn
	// Block means the hard limit is reached; the save must not happen.
	Block
)

// Guard gates save attempts against the free-tier entry limits. The soft
// warning fires at most once per screen session and deliberately consumes
// the save attempt (the user has to press save again).
type Guard struct {
	warned bool
}

func NewGuard() *Guard {
	return &Guard{}
}

// CheckSave decides whether a save with the given stored entry count may
// proceed under the plan. count is the global count across all profiles.
func (g *Guard) CheckSave(plan models.Plan, count int) Decision {
	limits := LimitsFor(plan)
	if limits.Unlimited {
		return Allow
	}

	if count >= limits.MaxEntries {
		return Block
	}

	if count >= limits.WarnAt && !g.warned {
		g.warned = true
		return Warn
	}

	return Allow
}

// ResetSession clears the warn-once flag, called when the capture screen
// becomes active again.
func (g *Guard) ResetSession() {
	g.warned = false
}
