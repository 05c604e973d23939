package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	menuStyle = lipgloss.NewStyle().
			PaddingBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	focusedButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("205")). // pink
				Bold(true)

	paragraphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green
)

// Renderer draws a Node tree as terminal text.
type Renderer struct {
	Width int // wrap width for paragraphs; 0 disables wrapping
	Focus int // index into Clickables of the highlighted control, -1 for none
}

// Render is pure: the same tree and Renderer always give the same string.
func (r Renderer) Render(root Node) string {
	clickable := 0
	return r.render(root, &clickable)
}

func (r Renderer) render(n Node, clickable *int) string {
	if n.IsText() {
		return n.Text
	}

	switch n.Tag {
	case "button":
		style := buttonStyle
		if *clickable == r.Focus {
			style = focusedButtonStyle
		}
		*clickable++
		return style.Render(n.TextContent())

	case "nav":
		parts := r.renderChildren(n, clickable)
		return menuStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))

	case "p":
		content := strings.Join(r.renderChildren(n, clickable), "")
		if r.Width > 0 {
			content = wordwrap.String(content, r.Width)
		}
		return paragraphStyle.Render(content)
	}

	return lipgloss.JoinVertical(lipgloss.Left, r.renderChildren(n, clickable)...)
}

func (r Renderer) renderChildren(n Node, clickable *int) []string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, r.render(c, clickable))
	}
	return parts
}
