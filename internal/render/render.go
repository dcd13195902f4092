// Package render prints articles to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/newsapi"
)

// Printer writes styled output. Styles come from a renderer bound to the
// writer, so piping to a file produces plain text.
type Printer struct {
	w io.Writer

	heading   lipgloss.Style
	title     lipgloss.Style
	link      lipgloss.Style
	meta      lipgloss.Style
	separator lipgloss.Style
	errStyle  lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:         w,
		heading:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		title:     r.NewStyle().Bold(true),
		link:      r.NewStyle().Italic(true).Foreground(ColorDim),
		meta:      r.NewStyle().Foreground(ColorSource),
		separator: r.NewStyle().Foreground(ColorBorder),
		errStyle:  r.NewStyle().Bold(true).Foreground(ColorAccent),
	}
}

// Heading builds the label printed above a list, e.g. "Top Headlines · in".
func Heading(e newsapi.Endpoint, c newsapi.Country) string {
	var label string
	switch e {
	case newsapi.TopHeadlines:
		label = "Top Headlines"
	case newsapi.Everything:
		label = "Everything"
	default:
		label = strings.ToUpper(e.String()[:1]) + e.String()[1:]
	}
	return label + " · " + c.Name()
}

// Articles prints heading followed by each article. limit caps the number
// printed; zero means all.
func (p *Printer) Articles(heading string, articles []newsapi.Article, limit int) error {
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	var b strings.Builder
	b.WriteString(p.heading.Render("# "+heading) + "\n\n")
	if len(articles) == 0 {
		b.WriteString(p.meta.Render("No articles found") + "\n")
	}
	for _, a := range articles {
		b.WriteString(p.title.Render(strings.TrimSpace(a.Title)) + "\n")
		b.WriteString(p.link.Render("> "+a.URL) + "\n")
		if m := metaLine(a, time.Now()); m != "" {
			b.WriteString(p.meta.Render(m) + "\n")
		}
		b.WriteString(p.separator.Render("---") + "\n")
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.errStyle.Render("error:")+" "+err.Error())
}

func metaLine(a newsapi.Article, now time.Time) string {
	var parts []string
	if a.Source.Name != "" {
		parts = append(parts, a.Source.Name)
	}
	if !a.PublishedAt.IsZero() {
		parts = append(parts, RelativeTime(a.PublishedAt, now))
	}
	return strings.Join(parts, " · ")
}

func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// Truncate shortens s to n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
