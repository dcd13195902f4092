package tui

import (
	"strings"
	"time"

	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/matheuskafuri/headlines/internal/render"
)

func renderListItem(a newsapi.Article, selected bool, width int, now time.Time) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + render.Truncate(a.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + render.Truncate(a.Title, width-4))
	}

	source := a.Source.Name
	if source == "" {
		source = hostOf(a.URL)
	}
	meta := "  " + itemSourceStyle.Render(render.Truncate(source, width/2))
	if !a.PublishedAt.IsZero() {
		meta += " " + itemTimeStyle.Render("· "+render.RelativeTime(a.PublishedAt, now))
	}

	return title + "\n" + meta
}

func hostOf(rawURL string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimPrefix(s, "www.")
}

// scrollWindow returns the [start, end) range of items shown so that the
// cursor stays visible.
func scrollWindow(cursor, total, visible int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > total {
		end = total
		start = end - visible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

func renderList(articles []newsapi.Article, cursor, height, width int) string {
	if len(articles) == 0 {
		return center("No articles found", width, height)
	}

	// Each item is 2 lines + 1 blank line
	start, end := scrollWindow(cursor, len(articles), height/3)
	now := time.Now()

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(articles[i], i == cursor, width, now))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func center(s string, width, height int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}

// filterArticles keeps the articles whose title contains query, ignoring case.
func filterArticles(articles []newsapi.Article, query string) []newsapi.Article {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return articles
	}
	var out []newsapi.Article
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), query) {
			out = append(out, a)
		}
	}
	return out
}
