package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")
	errorColor   = lipgloss.Color("#FF4B4B")

	nodeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	linkStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	emptyStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Italic(true)
)

func styled(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

// renderChain draws values as "[10] -> [20] -> nil".
func renderChain(values []int) string {
	if len(values) == 0 {
		return styled(emptyStyle, "(empty)")
	}
	var b strings.Builder
	for _, v := range values {
		b.WriteString(styled(nodeStyle, "["+strconv.Itoa(v)+"]"))
		b.WriteString(styled(linkStyle, " -> "))
	}
	b.WriteString(styled(linkStyle, "nil"))
	return b.String()
}
