package portal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter presents operation outcomes to the user.
type Reporter interface {
	Step(message string)
	Success(message string)
	Info(message string)
	Error(message string)

	// Choices lists names as a 1-based menu.
	Choices(names []string)
}

// Console is a Reporter writing prefixed lines to a terminal or pipe.
// Errors go to errOut. Colours are dropped when the writer is not a
// colour-capable terminal.
type Console struct {
	out    io.Writer
	errOut io.Writer
	styles consoleStyles
}

type consoleStyles struct {
	step    lipgloss.Style
	success lipgloss.Style
	info    lipgloss.Style
	err     lipgloss.Style
	index   lipgloss.Style
}

// NewConsole creates a Console.
func NewConsole(out, errOut io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	e := lipgloss.NewRenderer(errOut)
	return &Console{
		out:    out,
		errOut: errOut,
		styles: consoleStyles{
			step:    r.NewStyle().Foreground(lipgloss.Color("6")),
			success: r.NewStyle().Foreground(lipgloss.Color("2")),
			info:    r.NewStyle().Foreground(lipgloss.Color("3")),
			err:     e.NewStyle().Foreground(lipgloss.Color("1")),
			index:   r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		},
	}
}

func (c *Console) Step(message string) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.step.Render("==>"), message)
}

func (c *Console) Success(message string) {
	fmt.Fprintf(c.out, "%s  %s\n", c.styles.success.Render("[OK]"), message)
}

func (c *Console) Info(message string) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.info.Render("[INFO]"), message)
}

func (c *Console) Error(message string) {
	fmt.Fprintf(c.errOut, "%s %s\n", c.styles.err.Render("[ERR]"), message)
}

func (c *Console) Choices(names []string) {
	for i, name := range names {
		fmt.Fprintf(c.out, "  %s %s\n", c.styles.index.Render(fmt.Sprintf("[%d]", i+1)), name)
	}
}

var _ Reporter = (*Console)(nil)
