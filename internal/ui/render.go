// Package ui renders block trees for terminal output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/testatlas/core/pkg/domain"
)

var (
	suiteStyle = lipgloss.NewStyle().Bold(true)
	onlyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	skipStyle  = lipgloss.NewStyle().Faint(true)
	todoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	condStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	locStyle   = lipgloss.NewStyle().Faint(true)
)

func marker(b *domain.Block) string {
	switch b.Mode {
	case domain.ModeOnly:
		return onlyStyle.Render("only")
	case domain.ModeSkipped:
		return skipStyle.Render("skip")
	case domain.ModeTodo:
		return todoStyle.Render("todo")
	case domain.ModeConditional:
		return condStyle.Render("cond")
	default:
		return "    "
	}
}

// RenderResult writes an indented block tree for one parsed file.
func RenderResult(w io.Writer, res *domain.ParseResult) {
	fmt.Fprintf(w, "%s (%s)\n", res.Path, res.Dialect)
	for _, b := range res.Roots {
		renderBlock(w, b, 1)
	}
}

func renderBlock(w io.Writer, b *domain.Block, depth int) {
	indent := strings.Repeat("  ", depth)

	name := b.Name
	if b.Kind.IsContainer() {
		name = suiteStyle.Render(name)
	}
	if b.LastProperty == domain.ModifierEach || b.LastProperty == domain.ModifierFor {
		name += skipStyle.Render(" (parameterized)")
	}

	loc := locStyle.Render(fmt.Sprintf(":%d", b.Range.Start.Line))
	fmt.Fprintf(w, "%s%s %s %s%s\n", indent, marker(b), b.Kind, name, loc)

	for _, child := range b.Children {
		renderBlock(w, child, depth+1)
	}
}
