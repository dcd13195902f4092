package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/matheuskafuri/headlines/internal/render"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	endpoint  newsapi.Endpoint
	country   newsapi.Country
	async     bool
	limit     int
	config    string
	envFile   string
	verbose   bool
	noHistory bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		endpoint: newsapi.TopHeadlines,
		country:  newsapi.India,
	}

	root := &cobra.Command{
		Use:   "headlines",
		Short: "Print the latest news from NewsAPI",
		Long: `headlines fetches articles from newsapi.org and prints them to the terminal.

The API key is read from the API_KEY environment variable or a .env file in the
working directory. Defaults for endpoint and country come from the config file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.VarP(&opts.endpoint, "endpoint", "e", "news endpoint (see 'headlines endpoints')")
	pf.VarP(&opts.country, "country", "c", "country code: in, gb or us")
	pf.StringVar(&opts.config, "config", "", "path to config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading API_KEY")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")
	pf.BoolVar(&opts.noHistory, "no-history", false, "don't record this fetch in the history log")

	root.Flags().BoolVar(&opts.async, "async", false, "use the non-blocking fetch mode")
	root.Flags().IntVarP(&opts.limit, "limit", "n", 0, "print at most n articles (0 = all)")

	root.AddCommand(newBrowseCmd(opts))
	root.AddCommand(newEndpointsCmd())
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newPruneCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "headlines %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func runFetch(cmd *cobra.Command, opts *rootOptions) error {
	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	var (
		resp *newsapi.Response
		mode = newsapi.Blocking
	)
	if opts.async {
		mode = newsapi.NonBlocking
		res := <-s.client.FetchAsync(cmd.Context(), s.req)
		resp, err = res.Response, res.Err
	} else {
		resp, err = s.client.Fetch(cmd.Context(), s.req)
	}
	s.record(s.req, mode, resp, err)
	if err != nil {
		return err
	}

	heading := render.Heading(s.req.Endpoint, s.req.Country)
	return render.New(cmd.OutOrStdout()).Articles(heading, resp.Articles, opts.limit)
}

func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
