// Package style holds the lipgloss palette, pterm tables and glamour
// markdown rendering used by the terminal renderer.
package style
