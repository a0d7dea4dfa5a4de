package main

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	// Section title
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Field label
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Gate verdicts
	yesStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	noStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	// Prompt text box
	promptBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			Width(76)
)
