package report

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Note   lipgloss.Style
	Warn   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Note:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
		Warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// PlainStyles renders text unchanged.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Header: s, Label: s, Value: s, Note: s, Warn: s}
}
