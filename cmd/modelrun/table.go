package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/reusee/modelrun/stores"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true).Padding(0, 1)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Padding(0, 1)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Padding(0, 1).Align(lipgloss.Right)
)

// renderTable draws grid for the terminal. A leading labels row becomes the
// header.
func renderTable(grid [][]string) string {
	if len(grid) == 0 {
		return "no data"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			}
			return valueStyle
		})

	rows := grid
	if len(grid[0]) > 0 && grid[0][0] == stores.LabelsKey {
		t = t.Headers(grid[0]...)
		rows = grid[1:]
	}
	return t.Rows(rows...).String()
}
