package settings

import (
	"errors"
	"fmt"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Language string `help:"Set the UI language (no|en)." enum:"no,en,"`
	Profile  string `help:"Set the active profile (private|work)." enum:"private,work,"`
	Plan     string `help:"Set the plan tier (free|pro). Developer toggle." enum:"free,pro,"`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	state, err := app.Load(ctx.Store)
	if err != nil {
		return err
	}

	if c.List || (c.Language == "" && c.Profile == "" && c.Plan == "") {
		settings := state.Settings()
		fmt.Println("Current Settings:")
		fmt.Printf("  Language: %s\n", settings.Language)
		fmt.Printf("  Plan:     %s\n", settings.Plan)
		fmt.Printf("  Profile:  %s\n", settings.ActiveProfile)
		return nil
	}

	if c.Language != "" {
		if err := state.SetLanguage(models.Language(c.Language)); err != nil {
			return fmt.Errorf("failed to set language: %w", err)
		}
		fmt.Printf("Language set to %s\n", c.Language)
	}

	// Plan first: dropping to free may force the profile back to private,
	// and an explicit --profile work should then be rejected cleanly.
	if c.Plan != "" {
		if err := state.SetPlan(models.Plan(c.Plan)); err != nil {
			return fmt.Errorf("failed to set plan: %w", err)
		}
		fmt.Printf("Plan set to %s\n", c.Plan)
		if c.Plan == "free" && state.ActiveProfile() == models.ProfilePrivate {
			fmt.Printf("Active profile: %s\n", state.ActiveProfile())
		}
	}

	if c.Profile != "" {
		if err := state.SetProfile(models.ProfileID(c.Profile)); err != nil {
			if errors.Is(err, app.ErrProfileLocked) {
				fmt.Println(state.T("capture.lockedProfileTitle"))
				fmt.Println(state.T("capture.lockedProfileMsg"))
				return nil
			}
			return fmt.Errorf("failed to set profile: %w", err)
		}
		fmt.Printf("Active profile set to %s\n", c.Profile)
	}

	return nil
}
