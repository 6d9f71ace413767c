package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// composite draws a centered card over the base view, keeping the base
// visible around the card's edges.
func composite(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	baseLines := toCanvas(base, width, height)
	cardLines := toCanvas(placed, width, height)

	out := make([]string, height)
	for i := 0; i < height; i++ {
		start, end, ok := contentBounds(cardLines[i], width)
		if !ok {
			out[i] = baseLines[i]
			continue
		}
		left := ansi.Truncate(baseLines[i], start, "")
		middle := ansi.Truncate(ansi.TruncateLeft(cardLines[i], start, ""), end-start, "")
		right := ansi.TruncateLeft(baseLines[i], end, "")
		out[i] = padLine(left+middle+right, width)
	}
	return strings.Join(out, "\n")
}

// toCanvas normalises a string into exactly height lines of width cells.
func toCanvas(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padLine(lines[i], width)
	}
	return lines
}

// contentBounds finds the column span of a line's non-blank content.
func contentBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	body := strings.TrimRight(plain, " ")
	if body == "" {
		return 0, 0, false
	}
	start = len(body) - len(strings.TrimLeft(body, " "))
	return start, len(body), true
}

func padLine(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
