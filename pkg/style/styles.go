package style

import (
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Width(14)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Operation styles
var (
	AppendStyle  = lipgloss.NewStyle().Foreground(AppendColor).Bold(true)
	PrependStyle = lipgloss.NewStyle().Foreground(PrependColor).Bold(true)
	SetStyle     = lipgloss.NewStyle().Foreground(SetColor).Bold(true)
	UnsetStyle   = lipgloss.NewStyle().Foreground(UnsetColor).Bold(true)
)

// OpStyle returns the style for an environment operation kind
func OpStyle(kind types.EnvOpKind) lipgloss.Style {
	switch kind {
	case types.OpAppend:
		return AppendStyle
	case types.OpPrepend:
		return PrependStyle
	case types.OpSet:
		return SetStyle
	case types.OpUnset:
		return UnsetStyle
	default:
		return MutedStyle
	}
}
