package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0066CC"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#006600"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CC0000"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)
)
