package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/newsapi"
)

func renderPreview(article *newsapi.Article, width, height int) string {
	if article == nil {
		return center("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(article.Title)

	meta := article.Source.Name
	if meta == "" {
		meta = hostOf(article.URL)
	}
	if !article.PublishedAt.IsZero() {
		meta = fmt.Sprintf("%s · %s", meta, article.PublishedAt.Format("Jan 2, 2006"))
	}
	if article.Author != "" {
		meta += " · " + article.Author
	}
	source := previewSourceStyle.Render(meta)

	desc := article.Description
	if desc == "" {
		desc = "(No description available)"
	}

	body := previewBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))
	link := previewLinkStyle.Width(contentWidth).Render("Read more: " + article.URL)

	content := lipgloss.JoinVertical(lipgloss.Left, title, source, "", body, "", link)

	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
