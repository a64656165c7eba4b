package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/halcyonic/pulse/internal/config"
	"github.com/halcyonic/pulse/internal/lifecycle"
	"github.com/halcyonic/pulse/internal/report"
	"github.com/halcyonic/pulse/internal/storage"
)

// openStorage opens the configured database.
func openStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}
	return storage.NewSQLiteStorage(dbPath)
}

// newGenerator builds a report generator from the configured thresholds.
// Unset keys fall back to the engine defaults.
func newGenerator() *report.Generator {
	cfg := lifecycle.Config{
		PassiveAfterMonths:  viper.GetInt("classification.passive_months"),
		FavoriteMinInvoices: viper.GetInt("classification.favorite_min_invoices"),
		RecentWindowMonths:  viper.GetInt("classification.recent_window_months"),
	}
	return report.NewGenerator(cfg, viper.GetInt("classification.lead_threshold_days"))
}

// passNow returns the single reference instant for one classification
// pass, so every figure printed by a command is mutually consistent.
func passNow() time.Time {
	return time.Now()
}
