package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"valleyviz/internal/dataset"
	"valleyviz/internal/extrema"
	"valleyviz/internal/viz"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model is the interactive dataset browser: a pannable, zoomable window
// over the |Z| curve with extremum markers. Detection always runs on the
// full dataset; the view filters to the window, so panning can never
// manufacture extrema at window edges.
type Model struct {
	ds     dataset.Dataset
	report extrema.Report
	name   string

	lo, hi         float64 // current window
	fullLo, fullHi float64

	showMarkers bool
	plotWidth   int
	plotHeight  int
}

// NewModel builds a browser over the full dataset range.
func NewModel(ds dataset.Dataset, report extrema.Report, name string) Model {
	lo, hi := ds.Bounds()
	return Model{
		ds:          ds,
		report:      report,
		name:        name,
		lo:          lo,
		hi:          hi,
		fullLo:      lo,
		fullHi:      hi,
		showMarkers: true,
		plotWidth:   80,
		plotHeight:  15,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "h", "left":
			m.pan(-0.25)
		case "l", "right":
			m.pan(0.25)
		case "+", "=":
			m.zoom(0.5)
		case "-", "_":
			m.zoom(2.0)
		case "m":
			m.showMarkers = !m.showMarkers
		case "r":
			m.lo, m.hi = m.fullLo, m.fullHi
		}
	case tea.WindowSizeMsg:
		if msg.Width > 20 {
			m.plotWidth = msg.Width - 12
		}
		if msg.Height > 12 {
			m.plotHeight = msg.Height - 9
		}
	}
	return m, nil
}

// pan shifts the window by the given fraction of its span, clamped to the
// dataset range.
func (m *Model) pan(frac float64) {
	span := m.hi - m.lo
	shift := span * frac
	if m.lo+shift < m.fullLo {
		shift = m.fullLo - m.lo
	}
	if m.hi+shift > m.fullHi {
		shift = m.fullHi - m.hi
	}
	m.lo += shift
	m.hi += shift
}

// zoom rescales the window span around its center, clamped to the
// dataset range.
func (m *Model) zoom(factor float64) {
	center := (m.lo + m.hi) / 2
	span := (m.hi - m.lo) * factor
	if span > m.fullHi-m.fullLo {
		m.lo, m.hi = m.fullLo, m.fullHi
		return
	}
	m.lo = center - span/2
	m.hi = center + span/2
	if m.lo < m.fullLo {
		m.lo = m.fullLo
	}
	if m.hi > m.fullHi {
		m.hi = m.fullHi
	}
}

func (m Model) View() string {
	start, end := m.ds.WindowBounds(m.lo, m.hi)
	win := m.ds[start:end]

	// Re-base full-dataset extremum indices onto the window slice.
	var winReport extrema.Report
	for _, p := range m.report.Points {
		if p.Index >= start && p.Index < end {
			p.Index -= start
			winReport.Points = append(winReport.Points, p)
		}
	}

	plot := viz.PlotDataset(win, winReport, viz.PlotOptions{
		Width:   m.plotWidth,
		Height:  m.plotHeight,
		Markers: m.showMarkers,
	})
	if plot == "" {
		plot = statusStyle.Render("(window contains no samples)")
	}

	status := fmt.Sprintf("window: [%.3f, %.3f] of [%.3f, %.3f]   samples: %d",
		m.lo, m.hi, m.fullLo, m.fullHi, len(win))

	return titleStyle.Render("valleyviz — "+m.name) + "\n" +
		plot + "\n" +
		statusStyle.Render(status) + "\n" +
		helpStyle.Render("h/l pan   +/- zoom   m markers   r reset   q quit")
}

// Browse runs the interactive browser until the user quits.
func Browse(ds dataset.Dataset, report extrema.Report, name string) error {
	p := tea.NewProgram(NewModel(ds, report, name))
	_, err := p.Run()
	return err
}
