package editor

// ANSI escape sequences for terminal control
const (
	// Screen control
	CLEAR_SCREEN = "\x1b[2J" // Clear entire screen
	CLEAR_LINE   = "\x1b[K"  // Clear line from cursor to end
	CURSOR_HOME  = "\x1b[H"  // Move cursor to top-left (1,1)

	// Cursor visibility
	CURSOR_HIDE = "\x1b[?25l" // Hide cursor
	CURSOR_SHOW = "\x1b[?25h" // Show cursor

	// Alternate screen buffer
	ENTER_ALT_SCREEN = "\x1b[?1049h"
	LEAVE_ALT_SCREEN = "\x1b[?1049l"

	// Format string for moving cursor to a specific row;col
	CURSOR_POSITION_FORMAT = "\x1b[%d;%dH"

	// Text formatting
	COLORS_RESET     = "\x1b[m"
	COLORS_INVERT    = "\x1b[7m"
	COLOR_DEFAULT_FG = "\x1b[39m"

	// Format string for setting a foreground color
	COLOR_FORMAT = "\x1b[%dm"
)
