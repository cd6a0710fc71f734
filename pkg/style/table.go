package style

import (
	"github.com/pterm/pterm"
)

// RenderTable renders rows under a header row using pterm
func RenderTable(header []string, rows [][]string) (string, error) {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	return pterm.DefaultTable.
		WithHasHeader().
		WithSeparator("  ").
		WithData(data).
		Srender()
}

// ErrorPrefix returns the styled prefix used for error lines
func ErrorPrefix() string {
	return pterm.Error.Prefix.Text
}
