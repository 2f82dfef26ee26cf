package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for the menus
type Styles struct {
	// Banner box and title
	Banner lipgloss.Style
	Title  lipgloss.Style

	// Menu entries
	MenuKey  lipgloss.Style
	MenuText lipgloss.Style

	// Dimmed hints under the menu
	Hint lipgloss.Style
}

// NewStyles returns the menu styles for output written to w
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Banner: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(0, 2),
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		MenuKey:  r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		MenuText: r.NewStyle(),
		Hint:     r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// menuItem is one numbered entry of a menu box
type menuItem struct {
	key   string
	label string
}

// renderMenu draws a titled box of numbered entries
func renderMenu(w io.Writer, s Styles, title, subtitle string, items []menuItem) {
	lines := []string{s.Title.Render(title)}
	if subtitle != "" {
		lines = append(lines, s.Hint.Render(subtitle))
	}
	lines = append(lines, "")
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s %s",
			s.MenuKey.Render("["+item.key+"]"),
			s.MenuText.Render(item.label)))
	}
	fmt.Fprintln(w, s.Banner.Render(strings.Join(lines, "\n")))
}
