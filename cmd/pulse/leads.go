package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halcyonic/pulse/internal/cli"
)

func leadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Classify and inspect the lead pipeline",
	}

	cmd.PersistentFlags().Int("threshold-days", 0, "days without activity before a lead is passive (default 20)")
	_ = viper.BindPFlag("classification.lead_threshold_days", cmd.PersistentFlags().Lookup("threshold-days"))

	cmd.AddCommand(leadsPassiveCmd())
	cmd.AddCommand(leadsSummaryCmd())

	return cmd
}

func leadsPassiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passive",
		Short: "List leads that crossed the inactivity threshold",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			leads, err := store.ListLeads(cmd.Context())
			if err != nil {
				return err
			}

			gen := newGenerator()
			passive := gen.PassiveLeads(leads, passNow())
			if len(passive) == 0 {
				fmt.Println(cli.FormatSuccess("No passive leads"))
				return nil
			}

			rows := make([][]string, 0, len(passive))
			for _, ls := range passive {
				rows = append(rows, []string{
					ls.Lead.Name,
					ls.Lead.Company,
					fmt.Sprintf("%d days", ls.Status.DaysSinceActivity),
					fmt.Sprintf("%.0f", ls.Lead.Value),
				})
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Passive leads (threshold %d days)", gen.LeadThresholdDays())))
			fmt.Println(cli.RenderTable([]string{"Lead", "Company", "Inactive", "Value"}, rows))
			return nil
		},
	}
}

func leadsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the pipeline health summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			leads, err := store.ListLeads(cmd.Context())
			if err != nil {
				return err
			}

			sum := newGenerator().Summary(leads, passNow())

			content := fmt.Sprintf(`Active leads:       %d (value %.0f, avg %d days idle)
Passive leads:      %d (value %.0f, avg %d days idle)
Recently passive:   %d
At risk of passive: %d`,
				sum.TotalActiveLeads, sum.ActiveValue, sum.AverageActiveDays,
				sum.TotalPassiveLeads, sum.PassiveValue, sum.AveragePassiveDays,
				sum.RecentlyPassive, sum.RiskOfPassive)

			fmt.Println(cli.RenderBox("📊 Lead pipeline", content))
			return nil
		},
	}
}
