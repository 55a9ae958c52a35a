package logs

import (
	"fmt"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/entitlement"
	"github.com/revisit-app/revisit/internal/models"
)

type LogListCmd struct {
	Category    string `help:"Filter by category id."`
	AllProfiles bool   `help:"List entries from both profiles."`
	ShowIDs     bool   `help:"Show entry IDs." name:"show-ids"`
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	state, err := app.Load(ctx.Store)
	if err != nil {
		return err
	}

	profile := state.ActiveProfile()
	if c.AllProfiles {
		profile = ""
	}

	// The work profile upsell replaces the whole list under the free plan.
	if profile == models.ProfileWork && !entitlement.IsProfileAllowed(state.Plan(), models.ProfileWork) {
		fmt.Println(state.T("log.lockedTitle"))
		fmt.Println(state.T("log.lockedMsg"))
		return nil
	}

	entries, err := ctx.Store.ListEntries(profile)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	if c.Category != "" {
		filter := models.NormalizeCategory(models.CategoryID(c.Category))
		filtered := make([]models.VisitEntry, 0, len(entries))
		for _, e := range entries {
			if e.CategoryID == filter {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 {
		fmt.Println(state.T("log.emptyTitle"))
		fmt.Println(state.T("log.emptyMsg"))
		return nil
	}

	fmt.Printf("%s (%d %s):\n", state.T("log.title"), len(entries), state.T("log.entries"))
	for _, e := range entries {
		fmt.Println(cli.FormatEntryLine(e, c.ShowIDs))
	}

	return nil
}
