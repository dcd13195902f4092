package cmd

import (
	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/matheuskafuri/headlines/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse articles interactively",
		Long:  "Open the interactive browser. Switch endpoints with [ and ], countries with c, and open articles with enter.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(tui.RunOpts{
				Client:  s.client,
				Request: s.req,
				OnFetch: func(req newsapi.RequestConfig, resp *newsapi.Response, err error) {
					s.record(req, newsapi.NonBlocking, resp, err)
				},
			})
		},
	}
}
