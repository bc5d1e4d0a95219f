package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	rowStyle       = lipgloss.NewStyle()
	rowAltStyle    = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true)
	dateStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	statusLineStyle    = lipgloss.NewStyle().Bold(true)
	promptStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	footerStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)
