package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "revisit"
	DefaultKeyringUser = "pro-license"
	DefaultConfigPath  = "~/.config/revisit/revisit.json"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used in display output (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PhotoDirName is the directory under the config dir where ingested photos live
	PhotoDirName = "photos"

	// Free-tier limits
	FreeMaxEntries = 100
	FreeWarnAt     = 80

	// Image optimization defaults (applied before a photo is persisted)
	PhotoMaxWidth    = 900
	PhotoJPEGQuality = 60

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "revisit-"

	// Notify constants
	NotifierLockfileName   = "revisit-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "app.revisit.tray"
)

const (
	StateCapture SessionState = iota
	StatePhotoTaken
	StateLog
	StateConfirmDelete
	StatePaywall
	StateSettings
)
