package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Renderer is the lipgloss renderer bound to stdout.
var Renderer = lipgloss.NewRenderer(os.Stdout)

// Predefined styles for consistent CLI output.
var (
	Green = Renderer.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	Cyan  = Renderer.NewStyle().Foreground(lipgloss.Color("14"))
	Red   = Renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	Dim   = Renderer.NewStyle().Foreground(lipgloss.Color("245"))
)
