package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ValleyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Bold(true)
	MountainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("209")).Bold(true)
	HelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const (
	ValleyMarker   = '▼'
	MountainMarker = '▲'
)
