package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/browser"
	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/matheuskafuri/headlines/internal/render"
)

const fetchTimeout = 30 * time.Second

// Fetcher is the part of newsapi.Client the browser needs.
type Fetcher interface {
	FetchAsync(ctx context.Context, req newsapi.RequestConfig) <-chan newsapi.Result
}

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

type App struct {
	client  Fetcher
	req     newsapi.RequestConfig
	onFetch func(newsapi.RequestConfig, *newsapi.Response, error)
	open    func(string) error

	articles []newsapi.Article
	visible  []newsapi.Article
	cursor   int
	mode     mode

	width  int
	height int

	searchInput textinput.Model
	spinner     spinner.Model

	loading bool
	seq     int
	err     error
}

// RunOpts holds all parameters for launching the browser.
type RunOpts struct {
	Client  Fetcher
	Request newsapi.RequestConfig
	// OnFetch, if set, is called after every fetch completes.
	OnFetch func(newsapi.RequestConfig, *newsapi.Response, error)
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Filter by title..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		client:      opts.Client,
		req:         opts.Request,
		onFetch:     opts.OnFetch,
		open:        browser.Open,
		searchInput: ti,
		spinner:     sp,
	}
}

func (a *App) Init() tea.Cmd {
	return a.startFetch()
}

func (a *App) startFetch() tea.Cmd {
	a.loading = true
	a.seq++
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

// switchRequest drops the articles of the previous request so they never show
// under the new endpoint or country, then fetches again.
func (a *App) switchRequest(req newsapi.RequestConfig) tea.Cmd {
	a.req = req
	a.articles = nil
	a.visible = nil
	a.cursor = 0
	return a.startFetch()
}

// fetchCmd captures the request and sequence number in the closure; the
// model may change while the request is in flight.
func (a *App) fetchCmd() tea.Cmd {
	client := a.client
	req := a.req
	seq := a.seq
	onFetch := a.onFetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		res := <-client.FetchAsync(ctx, req)
		if onFetch != nil {
			onFetch(req, res.Response, res.Err)
		}
		if res.Err != nil {
			return fetchErrMsg{seq: seq, err: res.Err}
		}
		return articlesLoadedMsg{seq: seq, articles: res.Response.Articles}
	}
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return browserErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) applyFilter() {
	a.visible = filterArticles(a.articles, a.searchInput.Value())
	if a.cursor >= len(a.visible) {
		a.cursor = max(0, len(a.visible)-1)
	}
}

func (a *App) selected() *newsapi.Article {
	if len(a.visible) == 0 || a.cursor >= len(a.visible) {
		return nil
	}
	return &a.visible[a.cursor]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case articlesLoadedMsg:
		if msg.seq != a.seq {
			return a, nil
		}
		a.loading = false
		a.articles = msg.articles
		a.cursor = 0
		a.applyFilter()
		return a, nil

	case fetchErrMsg:
		if msg.seq != a.seq {
			return a, nil
		}
		a.loading = false
		a.err = msg.err
		return a, nil

	case browserErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeNormal
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "g", "home":
		a.cursor = 0
		return a, nil
	case "G", "end":
		a.cursor = max(0, len(a.visible)-1)
		return a, nil
	case "o", "enter":
		if sel := a.selected(); sel != nil {
			return a, a.openCmd(sel.URL)
		}
		return a, nil
	case "]", "l", "right":
		return a, a.switchRequest(a.req.WithEndpoint(a.req.Endpoint.Next()))
	case "[", "h", "left":
		return a, a.switchRequest(a.req.WithEndpoint(a.req.Endpoint.Prev()))
	case "c":
		return a, a.switchRequest(a.req.WithCountry(a.req.Country.Next()))
	case "r":
		return a, a.startFetch()
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "esc":
		if a.searchInput.Value() != "" {
			a.searchInput.SetValue("")
			a.applyFilter()
		}
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.applyFilter()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.applyFilter()
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 {
		return helpTitleStyle.Render("  headlines")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	headerHeight := 1
	tabsHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - tabsHeight - statusHeight - 4 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1

	headerLeft := headerStyle.Render("headlines")
	headerRight := headerRightStyle.Render(render.Heading(a.req.Endpoint, a.req.Country))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	tabs := renderTabs(a.req.Endpoint, a.width)
	if a.mode == modeSearch {
		tabs = a.searchInput.View()
	}

	var listContent string
	if a.loading && len(a.articles) == 0 {
		listContent = center(a.spinner.View()+" Fetching...", listWidth-4, contentHeight)
	} else {
		listContent = renderList(a.visible, a.cursor, contentHeight, listWidth-4)
	}
	listPane := paneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	previewContent := renderPreview(a.selected(), previewWidth-4, contentHeight)
	previewPane := paneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	status := renderStatusBar(len(a.visible), len(a.articles), a.req.Country, a.searchInput.Value(), a.width, a.mode == modeSearch)
	if a.loading {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, status)
}

func (a *App) renderHelp() string {
	title := helpTitleStyle.Render("headlines")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Move through articles\n" +
		"  g/G           First / last article\n\n" +
		dim.Render("Feed") + "\n" +
		"  ]/[, l/h      Next / previous endpoint\n" +
		"  c             Next country\n" +
		"  r             Fetch again\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open article in browser\n" +
		"  /             Filter by title\n" +
		"  esc           Clear filter\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(strings.TrimRight(help, "\n"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the interactive browser and blocks until the user quits.
func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
