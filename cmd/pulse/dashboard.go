package main

import (
	"github.com/spf13/cobra"

	"github.com/halcyonic/pulse/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the live classification dashboard",
		Long: `Open a full-screen dashboard showing the customer lifecycle census and
the dormant customer and lead tables. The view recomputes a fresh
classification pass from the database every 30 seconds; each pass uses
one reference instant so all figures on screen are mutually consistent.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return tui.Run(store, newGenerator())
		},
	}
}
