package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/halcyonic/pulse/internal/importer"
	"github.com/halcyonic/pulse/internal/model"
	"github.com/halcyonic/pulse/internal/storage"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <customers|invoices|leads> [files...]",
		Short: "Import records from CSV exports",
		Long: `Import customers, invoices or leads from CSV files.

Unparseable dates are loaded as unknown timestamps and excluded from
classification; records missing their identifier are skipped.

Examples:
  # Import customers
  pulse import customers ~/exports/customers.csv

  # Import all invoice exports in a directory
  pulse import invoices ~/exports/invoices_*.csv

  # Preview without saving
  pulse import leads --dry-run ~/exports/leads.csv`,
		Args: cobra.MinimumNArgs(2),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	kind := args[0]

	switch kind {
	case "customers", "invoices", "leads":
	default:
		return fmt.Errorf("unknown record type %q (want customers, invoices or leads)", kind)
	}

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args[1:] {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("💓 Importing CSV files...",
		"type", kind,
		"file_count", len(allFiles),
		"dry_run", dryRun)

	var store *storage.SQLiteStorage
	if !dryRun {
		var err error
		store, err = openStorage()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := store.Migrate(cmd.Context()); err != nil {
			return err
		}
	}

	bar := progressbar.NewOptions(len(allFiles),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing "+kind+"..."),
	)

	totalImported := 0
	totalSkipped := 0
	seen := make(map[string]bool) // For deduplication across files

	for _, filePath := range allFiles {
		imported, skipped, err := importFile(cmd, store, kind, filePath, seen, dryRun)
		if err != nil {
			slog.Error("Failed to import file", "file", filepath.Base(filePath), "error", err)
			_ = bar.Add(1)
			continue
		}
		totalImported += imported
		totalSkipped += skipped
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	slog.Info("Import complete",
		"type", kind,
		"imported", totalImported,
		"skipped", totalSkipped,
		"dry_run", dryRun)
	return nil
}

func importFile(cmd *cobra.Command, store *storage.SQLiteStorage, kind, filePath string, seen map[string]bool, dryRun bool) (imported, skipped int, err error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ctx := cmd.Context()

	switch kind {
	case "customers":
		records, bad, err := importer.Customers(f)
		if err != nil {
			return 0, 0, err
		}
		fresh := make([]model.Customer, 0, len(records))
		for _, rec := range records {
			if seen[rec.ID] {
				skipped++
				continue
			}
			seen[rec.ID] = true
			fresh = append(fresh, rec)
		}
		if !dryRun && len(fresh) > 0 {
			if err := store.SaveCustomers(ctx, fresh); err != nil {
				return 0, 0, err
			}
		}
		return len(fresh), skipped + bad, nil

	case "invoices":
		records, bad, err := importer.Invoices(f)
		if err != nil {
			return 0, 0, err
		}
		fresh := make([]model.Invoice, 0, len(records))
		for _, rec := range records {
			if seen[rec.ID] {
				skipped++
				continue
			}
			seen[rec.ID] = true
			fresh = append(fresh, rec)
		}
		if !dryRun && len(fresh) > 0 {
			if err := store.SaveInvoices(ctx, fresh); err != nil {
				return 0, 0, err
			}
		}
		return len(fresh), skipped + bad, nil

	default: // leads
		records, bad, err := importer.Leads(f)
		if err != nil {
			return 0, 0, err
		}
		fresh := make([]model.Lead, 0, len(records))
		for _, rec := range records {
			if seen[rec.ID] {
				skipped++
				continue
			}
			seen[rec.ID] = true
			fresh = append(fresh, rec)
		}
		if !dryRun && len(fresh) > 0 {
			if err := store.SaveLeads(ctx, fresh); err != nil {
				return 0, 0, err
			}
		}
		return len(fresh), skipped + bad, nil
	}
}
