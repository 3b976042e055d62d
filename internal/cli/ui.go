// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleYes = lipgloss.NewStyle().Foreground(colorGreen)
	styleNo  = lipgloss.NewStyle().Foreground(colorRed)
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printKV writes an aligned "key  value" line.
func printKV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %-22s %v\n", StyleDim.Render(key), value)
}

func yesNo(b bool) string {
	if b {
		return styleYes.Render("yes")
	}

	return styleNo.Render("no")
}

func num(n int) string { return StyleNumber.Render(fmt.Sprint(n)) }

func list(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}

	return strings.Join(ids, " ")
}
