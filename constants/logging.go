package constants

// Debug Log File
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the active log file name inside LogDir
	LogFileName = "vi-snake.log"

	// LogMaxSizeMB is the size in megabytes at which the log file is rotated
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept
	LogMaxBackups = 3

	// LogMaxAgeDays is the retention of rotated files
	LogMaxAgeDays = 7
)
