package tui

// Color constants for the studylog TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#2F4A43" // Muted green-grey

	// Text Colors
	ColorPrimaryText   = "#E8F0EC" // Field labels, user input, titles
	ColorSecondaryText = "#A9BDB4" // Secondary text - soft sage grey
	ColorDisabledText  = "#5F6F68" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Green theme)
	ColorAccentMain   = "#10B981" // Accent elements, active borders
	ColorAccentBright = "#6EE7B7" // Highlights, running clock

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings (too-short hint, clock skew)
)
