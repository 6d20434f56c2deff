package main

import (
	"github.com/spf13/cobra"

	"github.com/ogiraldo/inkflow/internal/tui"
	"github.com/ogiraldo/inkflow/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive back-office dashboard",
		Long: `Start the full-screen terminal dashboard: cash-flow ledgers, user
management, payment approval and the latest posts, all in one place.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, settings, err := initStore()
			if err != nil {
				return err
			}

			s.SetThemeName(settings.Theme)

			return tui.Run(cmd.Context(),
				tui.WithStore(s),
				tui.WithTheme(themes.GetTheme(settings.Theme)),
				tui.WithRequestTimeout(settings.API.Timeout),
			)
		},
	}
}
