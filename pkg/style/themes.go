package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	// Entry colors
	DirectoryColor = lipgloss.AdaptiveColor{
		Light: "#B58900", // Dark yellow
		Dark:  "#FFD54F",
	}

	FileColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	// Status colors
	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#D97706", // Amber
		Dark:  "#FFB74D",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8", // Cyan
		Dark:  "#4DD0E1",
	}

	// Text colors
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEE2E6",
		Dark:  "#3B3F51",
	}
)
