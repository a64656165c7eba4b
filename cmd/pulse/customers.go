package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halcyonic/pulse/internal/cli"
)

func customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Classify and inspect the customer base",
	}

	cmd.PersistentFlags().Int("passive-months", 0, "months without an invoice before a customer is passive (default 6)")
	cmd.PersistentFlags().Int("favorite-min", 0, "invoices in the trailing year for favorite status (default 3)")
	_ = viper.BindPFlag("classification.passive_months", cmd.PersistentFlags().Lookup("passive-months"))
	_ = viper.BindPFlag("classification.favorite_min_invoices", cmd.PersistentFlags().Lookup("favorite-min"))

	cmd.AddCommand(customersStatsCmd())
	cmd.AddCommand(customersPassiveCmd())
	cmd.AddCommand(customersFavoritesCmd())
	cmd.AddCommand(customersListCmd())

	return cmd
}

func customersStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the lifecycle census of the customer base",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			customers, err := store.ListCustomers(ctx)
			if err != nil {
				return err
			}
			invoices, err := store.ListInvoices(ctx)
			if err != nil {
				return err
			}

			stats := newGenerator().Statistics(customers, invoices, passNow())

			content := fmt.Sprintf(`Total:    %d
Active:   %d
Favorite: %d
Passive:  %d
New:      %d`,
				stats.Total, stats.Active, stats.Favorite, stats.Passive, stats.New)

			fmt.Println(cli.RenderBox("📊 Customer lifecycle", content))
			return nil
		},
	}
}

func customersPassiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passive",
		Short: "List dormant customers, most dormant first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			customers, err := store.ListCustomers(ctx)
			if err != nil {
				return err
			}
			invoices, err := store.ListInvoices(ctx)
			if err != nil {
				return err
			}

			passive := newGenerator().PassiveCustomers(customers, invoices, passNow())
			if len(passive) == 0 {
				fmt.Println(cli.FormatSuccess("No passive customers"))
				return nil
			}

			rows := make([][]string, 0, len(passive))
			for _, cs := range passive {
				rows = append(rows, []string{
					cs.Customer.CompanyName,
					fmt.Sprintf("%d mo", cs.Status.MonthsSinceLastInvoice),
					fmt.Sprintf("%d", cs.Status.InvoiceCount),
					cs.Status.LastInvoiceDate.Format("2006-01-02"),
				})
			}

			fmt.Println(cli.FormatTitle("Passive customers"))
			fmt.Println(cli.RenderTable([]string{"Company", "Dormant", "Invoices", "Last invoice"}, rows))
			return nil
		},
	}
}

func customersFavoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List high-frequency customers, most frequent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			customers, err := store.ListCustomers(ctx)
			if err != nil {
				return err
			}
			invoices, err := store.ListInvoices(ctx)
			if err != nil {
				return err
			}

			favorites := newGenerator().FavoriteCustomers(customers, invoices, passNow())
			if len(favorites) == 0 {
				fmt.Println(cli.FormatWarning("No favorite customers yet"))
				return nil
			}

			rows := make([][]string, 0, len(favorites))
			for _, cs := range favorites {
				rows = append(rows, []string{
					cs.Customer.CompanyName,
					fmt.Sprintf("%d", cs.Status.InvoicesLastYear),
					cs.Status.LastInvoiceDate.Format("2006-01-02"),
				})
			}

			fmt.Println(cli.FormatTitle("Favorite customers"))
			fmt.Println(cli.RenderTable([]string{"Company", "Invoices (12mo)", "Last invoice"}, rows))
			return nil
		},
	}
}

func customersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every customer with its current classification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			customers, err := store.ListCustomers(ctx)
			if err != nil {
				return err
			}
			invoices, err := store.ListInvoices(ctx)
			if err != nil {
				return err
			}

			gen := newGenerator()
			now := passNow()

			rows := make([][]string, 0, len(customers))
			for _, cust := range customers {
				res := gen.Classify(cust.ID, invoices, now)
				rows = append(rows, []string{
					cust.CompanyName,
					res.Label,
					res.Description,
				})
			}

			fmt.Println(cli.FormatTitle("Customers"))
			fmt.Println(cli.RenderTable([]string{"Company", "Status", "Detail"}, rows))
			return nil
		},
	}
}
