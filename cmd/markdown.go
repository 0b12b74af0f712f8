package cmd

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// styleOption returns the glamour option for a style name, "auto" detects the terminal
// background.
func styleOption(style string) glamour.TermRendererOption {
	if style == "" || style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}

// printMarkdown renders md for the terminal. The raw markdown is printed if it cannot be
// rendered.
func printMarkdown(w io.Writer, md string, style string) {
	r, err := glamour.NewTermRenderer(styleOption(style), glamour.WithWordWrap(120))
	if err != nil {
		logger.Debug("cannot create markdown renderer", "style", style, "err", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug("cannot render markdown", "err", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// markdownToHTML converts md to a standalone HTML page.
func markdownToHTML(title, md string) ([]byte, error) {
	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := gm.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
