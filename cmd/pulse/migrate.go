package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/halcyonic/pulse/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, _ := cmd.Flags().GetBool("status")

			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()

			if status {
				version, err := store.SchemaVersion(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("schema version %d (expected %d)\n", version, storage.ExpectedSchemaVersion)
				return nil
			}

			if err := store.Migrate(ctx); err != nil {
				return err
			}
			slog.Info("Database is up to date", "version", storage.ExpectedSchemaVersion)
			return nil
		},
	}

	cmd.Flags().Bool("status", false, "Show the current schema version without migrating")

	return cmd
}
