package tui

// Color constants for the prodviz TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#7C3AED" // Accent elements, active borders
	ColorAccentBright = "#A78BFA" // Hover, highlights, selected hour

	// Rating Colors
	ColorRatingHigh    = "#2EC4B6" // Teal for 4-5 star hours
	ColorRatingMid     = "#FFBF69" // Amber for 3 star hours
	ColorRatingLow     = "#FF6B6B" // Coral for 1-2 star hours
	ColorRatingUnrated = "#E0E0E0" // Gray for unrated hours

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
)

// RatingColor maps a star rating to its display color; 0 means unrated
func RatingColor(rating int) string {
	switch rating {
	case 4, 5:
		return ColorRatingHigh
	case 3:
		return ColorRatingMid
	case 1, 2:
		return ColorRatingLow
	default:
		return ColorRatingUnrated
	}
}
