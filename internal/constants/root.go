package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateDreams SessionState = iota
	StateDiscover
	StateInsights
	StateChat
	StateProfile
	StateAddDream
	StateOnboarding
	StateConfirmation
)

const (
	AppName            = "dreambook"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/dreambook/dreambook.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dreambook-"
	BackupFileSuffix = ".db"

	// Priority bounds for dreams (1 = low, 3 = high)
	MinPriority = 1
	MaxPriority = 3

	// Lucidity bounds (how clear/vivid a dream feels, 1-5)
	MinLucidity = 1
	MaxLucidity = 5

	// DefaultPriority is the priority assigned when none is given
	DefaultPriority = 2

	// DefaultLucidity is the clarity rating assigned when none is given
	DefaultLucidity = 1

	// DefaultProfileAge seeds the onboarding age picker
	DefaultProfileAge = 25
)
