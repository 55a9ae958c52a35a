package cli

import (
	"fmt"
	"path/filepath"

	"github.com/revisit-app/revisit/internal/backup"
	"github.com/revisit-app/revisit/internal/constants"
	"github.com/revisit-app/revisit/internal/logger"
	"github.com/revisit-app/revisit/internal/models"
	"github.com/revisit-app/revisit/internal/storage"
)

// Context is the shared state handed to every command.
type Context struct {
	Store storage.Provider
	Debug bool
}

// PhotoDir returns the directory where optimized photos are stored.
func (c *Context) PhotoDir() string {
	return filepath.Join(filepath.Dir(c.Store.GetConfigPath()), constants.PhotoDirName)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatEntryLine renders one entry for plain CLI output.
func FormatEntryLine(e models.VisitEntry, showID bool) string {
	cat := models.CategoryByID(e.CategoryID)

	gps := "(no GPS)"
	if e.Location != nil {
		gps = fmt.Sprintf("%.5f,%.5f", e.Location.Lat, e.Location.Lon)
	}

	idStr := ""
	if showID {
		idStr = fmt.Sprintf(" (ID: %s)", e.ID)
	}

	line := fmt.Sprintf("  %s %s [%s/%s] %s %s%s",
		e.CreatedAtIso, cat.Emoji, e.Rating, e.ProfileID, gps, filepath.Base(e.PhotoURI), idStr)
	if e.Comment != "" {
		line += "\n      " + e.Comment
	}
	return line
}
