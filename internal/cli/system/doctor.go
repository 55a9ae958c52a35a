package system

import (
	"fmt"
	"os"

	"github.com/revisit-app/revisit/internal/backup"
	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/entitlement"
	"github.com/revisit-app/revisit/internal/models"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	ok := true

	fmt.Println("Checking revisit health...")
	fmt.Println()

	storePath := ctx.Store.GetConfigPath()
	if _, err := os.Stat(storePath); err != nil {
		fmt.Printf("✗ Store: not found at %s (run 'revisit init')\n", storePath)
		return nil
	}
	fmt.Printf("✓ Store: %s\n", storePath)

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		fmt.Printf("✗ Settings: %v\n", err)
		ok = false
	} else {
		fmt.Printf("✓ Settings: plan=%s profile=%s language=%q\n",
			settings.Plan, settings.ActiveProfile, settings.Language)
	}

	total, err := ctx.Store.CountEntries()
	if err != nil {
		fmt.Printf("✗ Entries: %v\n", err)
		ok = false
	} else {
		perProfile := ""
		for _, p := range []models.ProfileID{models.ProfilePrivate, models.ProfileWork} {
			entries, err := ctx.Store.ListEntries(p)
			if err != nil {
				continue
			}
			perProfile += fmt.Sprintf(" %s=%d", p, len(entries))
		}
		fmt.Printf("✓ Entries: %d total%s\n", total, perProfile)
	}

	if entitlement.HasLicense() {
		fmt.Println("✓ Keyring: pro license stored")
	} else {
		fmt.Println("✓ Keyring: no license stored (or keyring unavailable)")
	}

	photoDir := ctx.PhotoDir()
	if fi, err := os.Stat(photoDir); err != nil {
		fmt.Printf("! Photos: directory missing at %s (created on first capture)\n", photoDir)
	} else if !fi.IsDir() {
		fmt.Printf("✗ Photos: %s is not a directory\n", photoDir)
		ok = false
	} else {
		fmt.Printf("✓ Photos: %s\n", photoDir)
	}

	mgr := backup.NewManager(storePath)
	backups, err := mgr.ListBackups()
	if err != nil {
		fmt.Printf("✗ Backups: %v\n", err)
		ok = false
	} else {
		fmt.Printf("✓ Backups: %d in %s\n", len(backups), mgr.GetBackupDir())
	}

	fmt.Println()
	if ok {
		fmt.Println("All checks passed.")
	} else {
		fmt.Println("Some checks failed, see above.")
	}
	return nil
}
