// Package report composes per-record classifications into collection
// level views: filtered and sorted customer lists, census statistics and
// lead pipeline summaries. Like the classifiers it builds on, every
// function here is pure over in-memory collections and one explicit now.
package report

import (
	"sort"
	"time"

	"github.com/halcyonic/pulse/internal/lifecycle"
	"github.com/halcyonic/pulse/internal/model"
)

// CustomerStatus is a customer together with its classification.
type CustomerStatus struct {
	Customer model.Customer
	Status   model.Result
}

// LeadStatus is a lead together with its classification.
type LeadStatus struct {
	Lead   model.Lead
	Status model.LeadResult
}

// Statistics is the lifecycle census of a customer collection. The four
// status counts always sum to Total: every customer lands in exactly one
// bucket, including New for customers without invoices.
type Statistics struct {
	Total    int
	New      int
	Active   int
	Favorite int
	Passive  int
}

// Generator produces collection-level reports. A single Generator is
// safe for concurrent use as long as the input collections are not being
// mutated underneath it.
type Generator struct {
	classifier        *lifecycle.Classifier
	leadThresholdDays int
}

// NewGenerator creates a report generator with the given classification
// thresholds. A leadThresholdDays of zero or below falls back to
// lifecycle.DefaultLeadThresholdDays.
func NewGenerator(cfg lifecycle.Config, leadThresholdDays int) *Generator {
	if leadThresholdDays <= 0 {
		leadThresholdDays = lifecycle.DefaultLeadThresholdDays
	}
	return &Generator{
		classifier:        lifecycle.New(cfg),
		leadThresholdDays: leadThresholdDays,
	}
}

// LeadThresholdDays returns the lead inactivity threshold in effect.
func (g *Generator) LeadThresholdDays() int {
	return g.leadThresholdDays
}

// Classify runs the customer classifier with this generator's thresholds.
func (g *Generator) Classify(customerID string, invoices []model.Invoice, now time.Time) model.Result {
	return g.classifier.Classify(customerID, invoices, now)
}

// PassiveCustomers returns the customers classified passive at now,
// sorted by dormancy, most dormant first.
func (g *Generator) PassiveCustomers(customers []model.Customer, invoices []model.Invoice, now time.Time) []CustomerStatus {
	out := g.withStatus(customers, invoices, now, model.StatusPassive)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status.MonthsSinceLastInvoice > out[j].Status.MonthsSinceLastInvoice
	})
	return out
}

// FavoriteCustomers returns the customers classified favorite at now,
// sorted by invoice frequency, most frequent first.
func (g *Generator) FavoriteCustomers(customers []model.Customer, invoices []model.Invoice, now time.Time) []CustomerStatus {
	out := g.withStatus(customers, invoices, now, model.StatusFavorite)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status.InvoicesLastYear > out[j].Status.InvoicesLastYear
	})
	return out
}

func (g *Generator) withStatus(customers []model.Customer, invoices []model.Invoice, now time.Time, want model.Status) []CustomerStatus {
	out := make([]CustomerStatus, 0)
	for _, cust := range customers {
		res := g.classifier.Classify(cust.ID, invoices, now)
		if res.Status == want {
			out = append(out, CustomerStatus{Customer: cust, Status: res})
		}
	}
	return out
}

// Statistics classifies every customer exactly once and tallies the
// counts per status.
func (g *Generator) Statistics(customers []model.Customer, invoices []model.Invoice, now time.Time) Statistics {
	stats := Statistics{Total: len(customers)}
	for _, cust := range customers {
		switch g.classifier.Classify(cust.ID, invoices, now).Status {
		case model.StatusNew:
			stats.New++
		case model.StatusActive:
			stats.Active++
		case model.StatusFavorite:
			stats.Favorite++
		case model.StatusPassive:
			stats.Passive++
		}
	}
	return stats
}
