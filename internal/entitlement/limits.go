package entitlement

import (
	"github.com/revisit-app/revisit/internal/constants"
	"github.com/revisit-app/revisit/internal/models"
)

// Limits describes the entry-count ceiling for a plan. Unlimited plans carry
// no thresholds.
type Limits struct {
	Unlimited  bool
	MaxEntries int
	WarnAt     int
}

func LimitsFor(plan models.Plan) Limits {
	if models.NormalizePlan(plan) == models.PlanPro {
		return Limits{Unlimited: true}
	}
	return Limits{
		MaxEntries: constants.FreeMaxEntries,
		WarnAt:     constants.FreeWarnAt,
	}
}

// IsProfileAllowed reports whether the plan may use the profile: the work
// profile requires pro.
func IsProfileAllowed(plan models.Plan, profile models.ProfileID) bool {
	if profile == models.ProfileWork {
		return models.NormalizePlan(plan) == models.PlanPro
	}
	return true
}
