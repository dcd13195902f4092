package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/matheuskafuri/headlines/internal/config"
	"github.com/matheuskafuri/headlines/internal/history"
	"github.com/spf13/cobra"
)

func openHistory(opts *rootOptions) (*config.Config, *history.Log, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	l, err := history.Open(cfg.GetHistoryPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening history: %w", err)
	}
	return cfg, l, nil
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent fetches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, err := openHistory(opts)
			if err != nil {
				return err
			}
			defer l.Close()

			entries, err := l.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fetches recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tENDPOINT\tCOUNTRY\tMODE\tRESULT")
			for _, e := range entries {
				result := fmt.Sprintf("%d articles", e.ArticleCount)
				if !e.OK() {
					result = "error"
					if e.Code != "" {
						result += " (" + e.Code + ")"
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.FetchedAt.Format("2006-01-02 15:04"), e.Endpoint, e.Country, e.Mode, result)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show")
	return cmd
}

func newPruneCmd(opts *rootOptions) *cobra.Command {
	var olderThan string
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old entries from the history log",
		Long: `Delete history entries older than the retention period.

Uses history_retention from config (default: 30d) unless overridden with --older-than.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := openHistory(opts)
			if err != nil {
				return err
			}
			defer l.Close()

			retention := cfg.RetentionDuration()
			if olderThan != "" {
				d, err := config.ParseDays(olderThan)
				if err != nil {
					return fmt.Errorf("invalid --older-than value: %w", err)
				}
				retention = d
			}

			deleted, err := l.Prune(retention)
			if err != nil {
				return err
			}
			if deleted == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to prune.")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d entries older than %s.\n", deleted, formatDuration(retention))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&olderThan, "older-than", "", "override retention period (e.g., 7d, 72h)")
	return cmd
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show history log statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := openHistory(opts)
			if err != nil {
				return err
			}
			defer l.Close()

			path := cfg.GetHistoryPath()
			count, size, err := l.Stats(path)
			if err != nil {
				return fmt.Errorf("reading stats: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "History: %s\n", path)
			fmt.Fprintf(out, "Entries: %d\n", count)
			fmt.Fprintf(out, "Size: %s\n", formatBytes(size))
			return nil
		},
	}
}

func formatDuration(d time.Duration) string {
	if days := int(d.Hours() / 24); days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
