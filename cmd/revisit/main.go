package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/cli/backups"
	"github.com/revisit-app/revisit/internal/cli/logs"
	"github.com/revisit-app/revisit/internal/cli/pro"
	"github.com/revisit-app/revisit/internal/cli/settings"
	"github.com/revisit-app/revisit/internal/cli/system"
	"github.com/revisit-app/revisit/internal/constants"
	apperrors "github.com/revisit-app/revisit/internal/errors"
	"github.com/revisit-app/revisit/internal/logger"
	"github.com/revisit-app/revisit/internal/storage"
	"github.com/revisit-app/revisit/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .db/.sqlite suffix selects the SQLite backend, anything else the JSON backend." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging and debug-only keys in the TUI."`

	Init    system.InitCmd    `cmd:"" help:"Initialize revisit storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Capture cli.CaptureCmd    `cmd:"" help:"Capture a moment from an image file."`
	Log     struct {
		List   logs.LogListCmd   `cmd:"" help:"List saved moments." default:"1"`
		Delete logs.LogDeleteCmd `cmd:"" help:"Delete a moment by id."`
		Clear  logs.LogClearCmd  `cmd:"" help:"Delete all moments for a profile."`
	} `cmd:"" help:"Browse and manage the moment log."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or change language, profile and plan."`
	Pro      struct {
		Activate   pro.ProActivateCmd   `cmd:"" help:"Activate a pro license."`
		Deactivate pro.ProDeactivateCmd `cmd:"" help:"Deactivate the pro license."`
		Status     pro.ProStatusCmd     `cmd:"" help:"Show plan, license and limit status." default:"1"`
	} `cmd:"" help:"Manage the pro entitlement."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	DebugInfo system.DebugCmd `cmd:"" name:"debug-info" help:"Print paths, settings and counters for troubleshooting."`
}

func isSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Moment journal: one photo, one honest rating per visit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	var store storage.Provider
	if isSQLitePath(CLI.Config) {
		store = sqlite.NewStore(CLI.Config)
	} else {
		store = storage.NewJSONStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	// Load the store before running the command (init and migrate handle the
	// store lifecycle themselves)
	if sel := ctx.Selected(); sel != nil && sel.Name != "init" && sel.Name != "migrate" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
