package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shortener-go/internal/dto"
)

var (
	statsSkip  int
	statsLimit int
)

var statsCmd = &cobra.Command{
	Use:   "stats <short_url|id>",
	Short: "Show a URL and its click history, including deleted URLs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsLimit < 1 || statsLimit > dto.MaxLimit {
			statsLimit = dto.DefaultLimit
		}
		if statsSkip < 0 {
			statsSkip = 0
		}

		app, err := newApplication()
		if err != nil {
			return err
		}
		defer app.Close()

		url, history, err := app.urls.Stats(cmd.Context(), args[0], statsSkip, statsLimit)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\nCode: %s\nFull URL: %s\nActive: %t\nClicks: %d\n",
			url.ID, url.ShortURL, url.FullURL, url.IsActive, url.Clicks)
		switch {
		case history.Total == 0:
			fmt.Fprintln(cmd.OutOrStdout(), "No clicks recorded.")
			return nil
		case len(history.List) == 0:
			fmt.Fprintf(cmd.OutOrStdout(), "No clicks past the first %d (%d in total).\n", history.Skip, history.Total)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "History (%d-%d of %d):\n", history.Skip+1, history.Skip+len(history.List), history.Total)
		for _, click := range history.List {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", click.Date.Format(time.RFC3339), click.Client)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsSkip, "skip", 0, "clicks to skip")
	statsCmd.Flags().IntVar(&statsLimit, "limit", dto.DefaultLimit, "clicks to show (1-100)")
}
