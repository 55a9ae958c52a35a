package system

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/constants"
	"github.com/revisit-app/revisit/internal/i18n"
)

type DebugCmd struct{}

func (c *DebugCmd) Run(ctx *cli.Context) error {
	storePath := ctx.Store.GetConfigPath()

	fmt.Printf("%s %s (%s/%s, %s)\n", constants.AppName, constants.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	fmt.Println()
	fmt.Printf("Store:      %s\n", storePath)
	fmt.Printf("Photos:     %s\n", ctx.PhotoDir())
	fmt.Printf("Logs:       %s\n", filepath.Join(filepath.Dir(storePath), "logs", constants.AppName+".log"))
	fmt.Printf("Device lang: %s\n", i18n.DeviceLanguage())

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	fmt.Println()
	fmt.Printf("Plan:       %s\n", settings.Plan)
	fmt.Printf("Profile:    %s\n", settings.ActiveProfile)
	if settings.Language == "" {
		fmt.Println("Language:   (not chosen yet)")
	} else {
		fmt.Printf("Language:   %s\n", settings.Language)
	}

	count, err := ctx.Store.CountEntries()
	if err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}
	fmt.Printf("Entries:    %d\n", count)

	return nil
}
