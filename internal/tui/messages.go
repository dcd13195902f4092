package tui

import "github.com/matheuskafuri/headlines/internal/newsapi"

// seq ties a result to the fetch that produced it so results from a
// superseded request are dropped.
type articlesLoadedMsg struct {
	seq      int
	articles []newsapi.Article
}

type fetchErrMsg struct {
	seq int
	err error
}

type browserErrMsg struct {
	err error
}
