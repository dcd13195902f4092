package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matheuskafuri/headlines/internal/newsapi"
)

func sampleArticles() []newsapi.Article {
	return []newsapi.Article{
		{Title: "Rupee gains 12 paise", URL: "https://example.com/rupee", Source: newsapi.Source{Name: "Mint"}},
		{Title: "  Monsoon: “early” arrival  ", URL: "https://example.com/monsoon?a=1&b=2"},
		{Title: "Third", URL: "https://example.com/3"},
	}
}

func TestArticles(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Articles("Top Headlines · India", sampleArticles(), 0); err != nil {
		t.Fatalf("Articles: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Top Headlines · India",
		"Rupee gains 12 paise",
		"> https://example.com/rupee",
		"Mint",
		"Monsoon: “early” arrival",
		"> https://example.com/monsoon?a=1&b=2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "---"); got != 3 {
		t.Errorf("expected 3 separators, got %d", got)
	}
}

func TestArticlesLimit(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Articles("x", sampleArticles(), 1); err != nil {
		t.Fatalf("Articles: %v", err)
	}
	if strings.Contains(buf.String(), "Third") {
		t.Error("limit not applied")
	}
}

func TestArticlesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Articles("x", nil, 0); err != nil {
		t.Fatalf("Articles: %v", err)
	}
	if !strings.Contains(buf.String(), "No articles found") {
		t.Errorf("expected empty notice, got %q", buf.String())
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Error(errors.New("boom"))
	if !strings.Contains(buf.String(), "error: boom") {
		t.Errorf("unexpected error output %q", buf.String())
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		e    newsapi.Endpoint
		c    newsapi.Country
		want string
	}{
		{newsapi.TopHeadlines, newsapi.India, "Top Headlines · India"},
		{newsapi.Sports, newsapi.UnitedKingdom, "Sports · United Kingdom"},
		{newsapi.Everything, newsapi.UnitedStates, "Everything · United States"},
	}
	for _, tt := range tests {
		if got := Heading(tt.e, tt.c); got != tt.want {
			t.Errorf("Heading(%v, %v) = %q, want %q", tt.e, tt.c, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
		{time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "Jun 15"},
	}
	for _, tt := range tests {
		if got := RelativeTime(tt.t, now); got != tt.want {
			t.Errorf("RelativeTime(%v ago) = %q, want %q", now.Sub(tt.t), got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
		{"日本語テスト", 5, "日本..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}
