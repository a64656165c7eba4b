package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonic/pulse/internal/model"
)

func daysAgo(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

func TestClassifier_Classify(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		customerID string
		invoices   []model.Invoice
		want       model.Status
		wantCount  int
		wantRecent int
		wantMonths int
	}{
		{
			name:       "no invoices classifies as new",
			customerID: "C1",
			invoices:   nil,
			want:       model.StatusNew,
		},
		{
			name:       "only other customers' invoices classifies as new",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C2", Date: daysAgo(now, 10)},
				{ID: "i2", CustomerID: "C3", Date: daysAgo(now, 20)},
			},
			want: model.StatusNew,
		},
		{
			name:       "three invoices inside the year classifies as favorite",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C1", Date: daysAgo(now, 40)},
				{ID: "i2", CustomerID: "C1", Date: daysAgo(now, 100)},
				{ID: "i3", CustomerID: "C1", Date: daysAgo(now, 200)},
			},
			want:       model.StatusFavorite,
			wantCount:  3,
			wantRecent: 3,
		},
		{
			name:       "two invoices inside the year classifies as active",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C1", Date: daysAgo(now, 40)},
				{ID: "i2", CustomerID: "C1", Date: daysAgo(now, 100)},
			},
			want:       model.StatusActive,
			wantCount:  2,
			wantRecent: 2,
		},
		{
			name:       "last invoice older than six months classifies as passive",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C1", Date: daysAgo(now, 220)},
				{ID: "i2", CustomerID: "C1", Date: daysAgo(now, 300)},
			},
			want:       model.StatusPassive,
			wantCount:  2,
			wantMonths: 7, // floor(220/30)
		},
		{
			name:       "passive takes precedence over favorite volume",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C1", Date: now.AddDate(0, -7, 0)},
				{ID: "i2", CustomerID: "C1", Date: now.AddDate(0, -8, 0)},
				{ID: "i3", CustomerID: "C1", Date: now.AddDate(0, -8, -10)},
				{ID: "i4", CustomerID: "C1", Date: now.AddDate(0, -9, 0)},
			},
			want:       model.StatusPassive,
			wantCount:  4,
			wantMonths: 7, // 214 elapsed days
		},
		{
			name:       "invoice exactly at the six month cutoff stays active",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C1", Date: now.AddDate(0, -6, 0)},
			},
			want:       model.StatusActive,
			wantCount:  1,
			wantRecent: 1,
		},
		{
			name:       "legacy name correlation applies when ID is absent",
			customerID: "Acme GmbH",
			invoices: []model.Invoice{
				{ID: "i1", CustomerName: "Acme GmbH", Date: daysAgo(now, 30)},
			},
			want:       model.StatusActive,
			wantCount:  1,
			wantRecent: 1,
		},
		{
			name:       "stable ID wins over a conflicting name",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C2", CustomerName: "C1", Date: daysAgo(now, 30)},
			},
			want: model.StatusNew,
		},
		{
			name:       "invoice without any usable date is excluded",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C1"},
			},
			want: model.StatusNew,
		},
		{
			name:       "created timestamp serves as issuance fallback",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C1", CreatedAt: daysAgo(now, 50)},
			},
			want:       model.StatusActive,
			wantCount:  1,
			wantRecent: 1,
		},
		{
			name:       "old invoices outside the year do not count toward favorite",
			customerID: "C1",
			invoices: []model.Invoice{
				{ID: "i1", CustomerID: "C1", Date: daysAgo(now, 40)},
				{ID: "i2", CustomerID: "C1", Date: daysAgo(now, 100)},
				{ID: "i3", CustomerID: "C1", Date: now.AddDate(0, -14, 0)},
			},
			want:       model.StatusActive,
			wantCount:  3,
			wantRecent: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultConfig())
			got := c.Classify(tt.customerID, tt.invoices, now)

			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.wantCount, got.InvoiceCount)
			assert.Equal(t, tt.wantRecent, got.InvoicesLastYear)
			assert.Equal(t, tt.wantMonths, got.MonthsSinceLastInvoice)
			assert.NotEmpty(t, got.Label)
			assert.NotEmpty(t, got.Description)
		})
	}
}

func TestClassifier_FavoriteBoundary(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(DefaultConfig())

	invoices := []model.Invoice{
		{ID: "i1", CustomerID: "C1", Date: daysAgo(now, 40)},
		{ID: "i2", CustomerID: "C1", Date: daysAgo(now, 120)},
	}

	got := c.Classify("C1", invoices, now)
	require.Equal(t, model.StatusActive, got.Status)

	// A third qualifying invoice flips the same customer to favorite.
	invoices = append(invoices, model.Invoice{ID: "i3", CustomerID: "C1", Date: daysAgo(now, 150)})
	got = c.Classify("C1", invoices, now)
	assert.Equal(t, model.StatusFavorite, got.Status)
	assert.Equal(t, 3, got.InvoicesLastYear)
}

func TestClassifier_ReferenceScenarios(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(DefaultConfig())

	invoices := []model.Invoice{
		{ID: "i1", CustomerID: "C1", Date: daysAgo(now, 40)},
		{ID: "i2", CustomerID: "C1", Date: daysAgo(now, 100)},
		{ID: "i3", CustomerID: "C1", Date: daysAgo(now, 200)},
	}
	got := c.Classify("C1", invoices, now)
	assert.Equal(t, model.StatusFavorite, got.Status)
	assert.Equal(t, 3, got.InvoicesLastYear)
	assert.True(t, got.LastInvoiceDate.Equal(daysAgo(now, 40)))

	invoices[0].Date = daysAgo(now, 220)
	got = c.Classify("C1", invoices, now)
	assert.Equal(t, model.StatusPassive, got.Status)
	assert.Equal(t, 7, got.MonthsSinceLastInvoice)
}

func TestClassifier_CustomThresholds(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(Config{PassiveAfterMonths: 3, FavoriteMinInvoices: 2, RecentWindowMonths: 12})

	// Four months dormant: passive under the tightened threshold.
	got := c.Classify("C1", []model.Invoice{
		{ID: "i1", CustomerID: "C1", Date: now.AddDate(0, -4, 0)},
	}, now)
	assert.Equal(t, model.StatusPassive, got.Status)

	// Two recent invoices reach the lowered favorite bar.
	got = c.Classify("C1", []model.Invoice{
		{ID: "i1", CustomerID: "C1", Date: daysAgo(now, 20)},
		{ID: "i2", CustomerID: "C1", Date: daysAgo(now, 60)},
	}, now)
	assert.Equal(t, model.StatusFavorite, got.Status)
}

func TestClassifier_ZeroConfigFallsBackToDefaults(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, DefaultConfig(), c.Config())
}

func TestClassifier_DeterministicAndNonMutating(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(DefaultConfig())

	invoices := []model.Invoice{
		{ID: "i2", CustomerID: "C1", Date: daysAgo(now, 100), Amount: 250},
		{ID: "i1", CustomerID: "C1", Date: daysAgo(now, 40), Amount: 100},
		{ID: "i3", CustomerID: "C2", Date: daysAgo(now, 10), Amount: 999},
	}
	original := make([]model.Invoice, len(invoices))
	copy(original, invoices)

	first := c.Classify("C1", invoices, now)
	second := c.Classify("C1", invoices, now)

	assert.Equal(t, first, second)
	assert.Equal(t, original, invoices, "input slice must not be reordered or mutated")
}
