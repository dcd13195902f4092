package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/matheuskafuri/headlines/internal/config"
	"github.com/matheuskafuri/headlines/internal/history"
	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/spf13/cobra"
)

// session is everything a fetching command needs, resolved once at startup.
type session struct {
	cfg    *config.Config
	client *newsapi.Client
	req    newsapi.RequestConfig
	log    *history.Log
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	if err := config.LoadEnv(opts.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		return nil, err
	}

	client, err := newsapi.NewClient(cfg.ClientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	req := newsapi.NewRequestConfig(apiKey).
		WithEndpoint(cfg.EndpointValue()).
		WithCountry(cfg.CountryValue())
	if cmd.Flags().Changed("endpoint") {
		req = req.WithEndpoint(opts.endpoint)
	}
	if cmd.Flags().Changed("country") {
		req = req.WithCountry(opts.country)
	}

	s := &session{cfg: cfg, client: client, req: req}
	if cfg.HistoryEnabled() && !opts.noHistory {
		l, err := history.Open(cfg.GetHistoryPath())
		if err != nil {
			// fetching still works without the log
			slog.Warn("history disabled", "error", err)
		} else {
			s.log = l
		}
	}
	return s, nil
}

func (s *session) record(req newsapi.RequestConfig, mode newsapi.Mode, resp *newsapi.Response, err error) {
	if s.log == nil {
		return
	}
	if err := s.log.Record(historyEntry(req, mode, resp, err)); err != nil {
		slog.Warn("recording fetch", "error", err)
	}
}

func historyEntry(req newsapi.RequestConfig, mode newsapi.Mode, resp *newsapi.Response, err error) history.Entry {
	e := history.Entry{
		Endpoint: req.Endpoint.String(),
		Country:  req.Country.Code(),
		Mode:     mode.String(),
		Status:   newsapi.StatusOK,
	}
	if err != nil {
		e.Status = "error"
		e.Error = err.Error()
		var apiErr *newsapi.APIError
		if errors.As(err, &apiErr) {
			e.Code = apiErr.Code
		}
		return e
	}
	if resp != nil {
		e.ArticleCount = len(resp.Articles)
	}
	return e
}

func (s *session) Close() {
	if s.log != nil {
		s.log.Close()
	}
}
