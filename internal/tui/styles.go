package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(2)

	gridBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#666666")).
			MarginLeft(2)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			MarginLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

// Cell styles
var (
	startCell   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	finishCell  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3333"))
	pathCell    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00"))
	visitedCell = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AFFF"))
	wallCell    = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	airCell     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))

	terrainCells = map[string]lipgloss.Style{
		"Mud":   lipgloss.NewStyle().Foreground(lipgloss.Color("#AF5F00")),
		"Water": lipgloss.NewStyle().Foreground(lipgloss.Color("#0087FF")),
		"Sand":  lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AF5F")),
		"Grass": lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAF00")),
	}
)
