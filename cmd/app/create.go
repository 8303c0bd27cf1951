package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createURL string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Shorten a URL",
	Example: `  shortener create --url="https://go.dev/doc/effective_go"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication()
		if err != nil {
			return err
		}
		defer app.Close()

		url, created, err := app.urls.CreateUrl(cmd.Context(), createURL)
		if err != nil {
			return err
		}

		if created {
			fmt.Fprintln(cmd.OutOrStdout(), "Short URL created:")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "URL already shortened:")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\nCode: %s\nFull URL: %s\nActive: %t\n", url.ID, url.ShortURL, url.FullURL, url.IsActive)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createURL, "url", "", "the long URL to shorten")
	_ = createCmd.MarkFlagRequired("url")
}
