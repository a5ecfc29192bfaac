package tui

import "github.com/charmbracelet/lipgloss"

type uiStyles struct {
	header      lipgloss.Style
	timeline    lipgloss.Style
	sidebar     lipgloss.Style
	sidebarHead lipgloss.Style
	author      lipgloss.Style
	timestamp   lipgloss.Style
	badge       lipgloss.Style
	unconfirmed lipgloss.Style
	status      lipgloss.Style
	errStatus   lipgloss.Style
	inputFrame  lipgloss.Style
	formLabel   lipgloss.Style
}

func newStyles() uiStyles {
	accent := lipgloss.Color("#01cdfe")
	mint := lipgloss.Color("#05ffa1")
	muted := lipgloss.Color("#9ca3d8")
	warn := lipgloss.Color("#ff71ce")

	return uiStyles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),
		timeline: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		sidebarHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(mint),
		author: lipgloss.NewStyle().
			Bold(true),
		timestamp: lipgloss.NewStyle().
			Foreground(muted),
		badge: lipgloss.NewStyle().
			Foreground(mint),
		unconfirmed: lipgloss.NewStyle().
			Foreground(muted).
			Faint(true),
		status: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		errStatus: lipgloss.NewStyle().
			Foreground(warn).
			Padding(0, 1),
		inputFrame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		formLabel: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
	}
}
