// Package panes contains the bordered pane used by every playground region.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/instructvault/ivault-playground/internal/ui/styles"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures the appearance of a bordered panel.
type BorderConfig struct {
	Content string // The content to render inside the border
	Width   int    // Total width including borders
	Height  int    // Total height including borders

	TopLeft     string // Title on top border, left-aligned
	TopRight    string // Title on top border, right-aligned
	BottomLeft  string // Title on bottom border, left-aligned
	BottomRight string // Title on bottom border, right-aligned

	Focused            bool
	TitleColor         lipgloss.TerminalColor
	BorderColor        lipgloss.TerminalColor // Border color when not focused
	FocusedBorderColor lipgloss.TerminalColor // Border color when focused
}

// BorderedPane renders content within a bordered panel with optional titles.
// Content is clipped to the inner area; a nil color falls back to the
// default border color (FocusedBorderColor falls back to BorderColor).
func BorderedPane(cfg BorderConfig) string {
	borderStyle := lipgloss.NewStyle().Foreground(resolveBorderColor(cfg.BorderColor, cfg.FocusedBorderColor, cfg.Focused))
	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.BorderDefaultColor
	}
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 1)

	constrained := lipgloss.NewStyle().
		Width(innerWidth).
		MaxWidth(innerWidth).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(cfg.Content)
	contentLines := strings.Split(constrained, "\n")

	var b strings.Builder
	b.WriteString(edge(borderTopLeft, borderTopRight, cfg.TopLeft, cfg.TopRight, innerWidth, borderStyle, titleStyle))
	b.WriteString("\n")
	side := borderStyle.Render(borderVertical)
	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		b.WriteString(side + line + side + "\n")
	}
	b.WriteString(edge(borderBottomLeft, borderBottomRight, cfg.BottomLeft, cfg.BottomRight, innerWidth, borderStyle, titleStyle))
	return b.String()
}

func resolveBorderColor(borderColor, focusedBorderColor lipgloss.TerminalColor, focused bool) lipgloss.TerminalColor {
	if borderColor == nil {
		borderColor = styles.BorderDefaultColor
	}
	if focused && focusedBorderColor != nil {
		return focusedBorderColor
	}
	return borderColor
}

// edge builds a horizontal border with optional embedded titles:
//
//	╭─ Left ───────── Right ─╮
//
// When both titles do not fit, the right one is dropped and the left one
// truncated.
func edge(leftCorner, rightCorner, leftTitle, rightTitle string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	plain := borderStyle.Render(leftCorner + strings.Repeat(borderHorizontal, innerWidth) + rightCorner)
	if leftTitle == "" && rightTitle == "" {
		return plain
	}

	leftWidth := lipgloss.Width(leftTitle)
	rightWidth := lipgloss.Width(rightTitle)

	// "─ L " + dashes + " R ─"
	need := 1
	if leftTitle != "" {
		need += leftWidth + 3
	}
	if rightTitle != "" {
		need += rightWidth + 3
	}
	if need > innerWidth {
		if leftTitle == "" || innerWidth < 5 {
			return plain
		}
		leftTitle = styles.TruncateString(leftTitle, innerWidth-4)
		rightTitle = ""
		leftWidth = lipgloss.Width(leftTitle)
		need = leftWidth + 4
	}
	dashes := innerWidth - need + 1

	var b strings.Builder
	b.WriteString(borderStyle.Render(leftCorner))
	if leftTitle != "" {
		b.WriteString(borderStyle.Render(borderHorizontal + " "))
		b.WriteString(titleStyle.Render(leftTitle))
		b.WriteString(borderStyle.Render(" "))
	}
	b.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, dashes)))
	if rightTitle != "" {
		b.WriteString(borderStyle.Render(" "))
		b.WriteString(titleStyle.Render(rightTitle))
		b.WriteString(borderStyle.Render(" " + borderHorizontal))
	}
	b.WriteString(borderStyle.Render(rightCorner))
	return b.String()
}
