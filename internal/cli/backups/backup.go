package backups

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revisit-app/revisit/internal/backup"
	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	fmt.Printf("✓ Created backup: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Found %d backup(s) in %s:\n\n", len(backups), mgr.GetBackupDir())
	for i, b := range backups {
		marker := "  "
		if i == 0 {
			marker = "→ "
		}
		fmt.Printf("%s%s  %s  %s\n",
			marker,
			b.Timestamp.Format(constants.DateFormat+" 15:04"),
			formatSize(b.Size),
			filepath.Base(b.Path))
	}

	return nil
}

type BackupRestoreCmd struct {
	Backup string `arg:"" optional:"" help:"Backup filename to restore. Defaults to the most recent backup."`
	Yes    bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", mgr.GetBackupDir())
	}

	backupPath := backups[0].Path
	if c.Backup != "" {
		backupPath = ""
		for _, b := range backups {
			if filepath.Base(b.Path) == c.Backup {
				backupPath = b.Path
				break
			}
		}
		if backupPath == "" {
			return fmt.Errorf("backup not found: %s", c.Backup)
		}
	}

	if !c.Yes {
		fmt.Printf("Restore %s over the current store? This replaces all entries and settings. [y/N] ", filepath.Base(backupPath))
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close store before restore: %w", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	fmt.Printf("✓ Restored backup: %s\n", filepath.Base(backupPath))
	return nil
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
