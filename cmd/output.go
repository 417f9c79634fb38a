package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashflow/renderer"
	"golang.org/x/term"
)

// printReport prints a report in the output format: text as is, or the markdown md, possibly converted to HTML.
func printReport(format, text, md string) error {
	switch format {
	case "markdown":
		printMarkdown(md)
	case "html":
		html, err := renderer.ToHTML(md)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, html)
	default:
		fmt.Fprint(stdout, text)
	}
	return nil
}

// printMarkdown prints md, styled when stdout is a terminal.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stdout, md)
		return
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
