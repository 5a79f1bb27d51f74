package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	flag   lipgloss.Style
	hdsc   lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")),
		value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		flag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		hdsc: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}
