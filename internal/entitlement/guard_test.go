package entitlement

import (
	"testing"

	"github.com/revisit-app/revisit/internal/constants"
	"github.com/revisit-app/revisit/internal/models"
)

func TestCheckSave(t *testing.T) {
	t.Run("pro plan is never limited", func(t *testing.T) {
		g := NewGuard()
		for _, count := range []int{0, constants.FreeWarnAt, constants.FreeMaxEntries, 100000} {
			if got := g.CheckSave(models.PlanPro, count); got != Allow {
				t.Errorf("CheckSave(pro, %d) = %v, want Allow", count, got)
			}
		}
	})

	t.Run("free plan allows below warn threshold", func(t *testing.T) {
		g := NewGuard()
		if got := g.CheckSave(models.PlanFree, constants.FreeWarnAt-1); got != Allow {
			t.Errorf("CheckSave() = %v, want Allow", got)
		}
	})

	t.Run("warn fires once then allows", func(t *testing.T) {
		g := NewGuard()
		if got := g.CheckSave(models.PlanFree, constants.FreeWarnAt); got != Warn {
			t.Fatalf("first CheckSave() = %v, want Warn", got)
		}
		if got := g.CheckSave(models.PlanFree, constants.FreeWarnAt); got != Allow {
			t.Errorf("second CheckSave() = %v, want Allow", got)
		}
	})

	t.Run("session reset re-arms the warning", func(t *testing.T) {
		g := NewGuard()
		g.CheckSave(models.PlanFree, constants.FreeWarnAt)
		g.ResetSession()
		if got := g.CheckSave(models.PlanFree, constants.FreeWarnAt); got != Warn {
			t.Errorf("CheckSave() after reset = %v, want Warn", got)
		}
	})

	t.Run("hard limit blocks regardless of warn state", func(t *testing.T) {
		g := NewGuard()
		if got := g.CheckSave(models.PlanFree, constants.FreeMaxEntries); got != Block {
			t.Errorf("CheckSave(at limit) = %v, want Block", got)
		}
		if got := g.CheckSave(models.PlanFree, constants.FreeMaxEntries+5); got != Block {
			t.Errorf("CheckSave(over limit) = %v, want Block", got)
		}
	})
}

func TestLimitsFor(t *testing.T) {
	free := LimitsFor(models.PlanFree)
	if free.Unlimited {
		t.Error("free plan should not be unlimited")
	}
	if free.MaxEntries != constants.FreeMaxEntries || free.WarnAt != constants.FreeWarnAt {
		t.Errorf("free limits = %+v", free)
	}

	pro := LimitsFor(models.PlanPro)
	if !pro.Unlimited {
		t.Error("pro plan should be unlimited")
	}
}

func TestIsProfileAllowed(t *testing.T) {
	cases := []struct {
		plan    models.Plan
		profile models.ProfileID
		want    bool
	}{
		{models.PlanFree, models.ProfilePrivate, true},
		{models.PlanFree, models.ProfileWork, false},
		{models.PlanPro, models.ProfilePrivate, true},
		{models.PlanPro, models.ProfileWork, true},
	}
	for _, tc := range cases {
		if got := IsProfileAllowed(tc.plan, tc.profile); got != tc.want {
			t.Errorf("IsProfileAllowed(%s, %s) = %v, want %v", tc.plan, tc.profile, got, tc.want)
		}
	}
}
