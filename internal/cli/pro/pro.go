package pro

import (
	"errors"
	"fmt"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/entitlement"
	"github.com/revisit-app/revisit/internal/keyring"
	"github.com/revisit-app/revisit/internal/models"
)

type ProActivateCmd struct {
	License string `arg:"" help:"Pro license token (RV-...)."`
}

func (c *ProActivateCmd) Run(ctx *cli.Context) error {
	if err := entitlement.Activate(c.License); err != nil {
		if errors.Is(err, entitlement.ErrInvalidLicense) {
			return fmt.Errorf("that does not look like a valid license token")
		}
		return err
	}

	state, err := app.Load(ctx.Store)
	if err != nil {
		return err
	}
	if err := state.SetPlan(models.PlanPro); err != nil {
		return fmt.Errorf("license stored but failed to update plan: %w", err)
	}

	fmt.Println("✓ Pro activated. Both profiles and unlimited entries are available.")
	return nil
}

type ProDeactivateCmd struct{}

func (c *ProDeactivateCmd) Run(ctx *cli.Context) error {
	if err := entitlement.Deactivate(); err != nil {
		return err
	}

	state, err := app.Load(ctx.Store)
	if err != nil {
		return err
	}
	// Dropping to free forces the active profile back to private.
	if err := state.SetPlan(models.PlanFree); err != nil {
		return fmt.Errorf("license removed but failed to update plan: %w", err)
	}

	fmt.Println("✓ Pro deactivated.")
	fmt.Printf("Active profile: %s\n", state.ActiveProfile())
	return nil
}

type ProStatusCmd struct{}

func (c *ProStatusCmd) Run(ctx *cli.Context) error {
	state, err := app.Load(ctx.Store)
	if err != nil {
		return err
	}

	fmt.Printf("Plan: %s\n", state.Plan())
	if entitlement.HasLicense() {
		fmt.Println("License: stored in OS keyring")
	} else if _, err := keyring.GetLicense(); errors.Is(err, keyring.ErrKeyringUnavailable) {
		fmt.Println("License: OS keyring unavailable")
	} else {
		fmt.Println("License: none")
	}

	limits := entitlement.LimitsFor(state.Plan())
	if limits.Unlimited {
		fmt.Println("Entries: unlimited")
	} else {
		count, err := ctx.Store.CountEntries()
		if err != nil {
			return err
		}
		fmt.Printf("Entries: %d of %d (warning at %d)\n", count, limits.MaxEntries, limits.WarnAt)
	}

	return nil
}
