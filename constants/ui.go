package constants

// UI Text
const (
	// ScoreTextFormat is the score display format, updated every tick
	ScoreTextFormat = "Score: %d"

	// GameOverMessage is the terminal notification shown once on collision
	GameOverMessage = "Game over!"

	// GameOverHint is shown under the game over message while awaiting acknowledgment
	GameOverHint = "press any key"
)

// Terminal Layout Constants
const (
	// TerminalCellColumns is the number of terminal columns one grid cell spans
	// Two columns per row approximates a square cell in most fonts
	TerminalCellColumns = 2

	// TerminalBorder is the frame thickness around the field in terminal cells
	TerminalBorder = 1

	// ScoreLineGap is the number of rows between the field frame and the score line
	ScoreLineGap = 0
)

// Window Layout Constants
const (
	// WindowScoreHeight is the pixel strip below the field reserved for the score text
	WindowScoreHeight = 30

	// WindowFontSize is the raylib default font size for score and overlay text
	WindowFontSize = 20

	// WindowTitle is the desktop window title
	WindowTitle = "vi-snake"
)
