package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "ISO date",
			input: "2024-06-01",
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "ISO datetime",
			input: "2024-06-01 14:30:00",
			want:  time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "RFC3339",
			input: "2024-06-01T14:30:00Z",
			want:  time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "day-first legacy format",
			input: "01.06.2024",
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
		{
			name:  "garbage",
			input: "not-a-date",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want))
			}
		})
	}
}

func TestCustomers(t *testing.T) {
	input := `id,company_name,sector,country,email
C1,Meridian Textiles,Textile,TR,info@meridian.example
C2,Baltic Freight,Logistics,LV,
,Missing ID,,,
`
	customers, skipped, err := Customers(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, skipped)
	require.Len(t, customers, 2)
	assert.Equal(t, "C1", customers[0].ID)
	assert.Equal(t, "Meridian Textiles", customers[0].CompanyName)
	assert.Equal(t, "Textile", customers[0].Sector)
	assert.Equal(t, "info@meridian.example", customers[0].Email)
	assert.Equal(t, "LV", customers[1].Country)
}

func TestInvoices(t *testing.T) {
	input := `id,customer_id,customer_name,number,amount,currency,date
i1,C1,,2024-001,1500.50,EUR,2024-06-01
i2,,Acme GmbH,2024-002,900,EUR,garbage-date
i3,,,2024-003,100,EUR,2024-06-02
`
	invoices, skipped, err := Invoices(strings.NewReader(input))
	require.NoError(t, err)

	// i3 has no correlation key at all and is skipped.
	assert.Equal(t, 1, skipped)
	require.Len(t, invoices, 2)

	assert.Equal(t, "i1", invoices[0].ID)
	assert.Equal(t, "C1", invoices[0].CustomerID)
	assert.InDelta(t, 1500.50, invoices[0].Amount, 0.001)
	assert.True(t, invoices[0].Date.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))

	// Unparseable date loads as zero; the engine excludes it later.
	assert.Equal(t, "i2", invoices[1].ID)
	assert.Equal(t, "Acme GmbH", invoices[1].CustomerName)
	assert.True(t, invoices[1].Date.IsZero())
}

func TestLeads(t *testing.T) {
	input := `id,name,company,stage,value,last_activity
l1,Jane Doe,Northwind,qualified,2500,2024-12-15
l2,No Activity,Contoso,new,1000,
l3,,Nameless Inc,new,500,2024-12-01
`
	leads, skipped, err := Leads(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, skipped)
	require.Len(t, leads, 2)

	assert.Equal(t, "l1", leads[0].ID)
	assert.Equal(t, "Jane Doe", leads[0].Name)
	assert.Equal(t, "qualified", leads[0].Stage)
	assert.InDelta(t, 2500, leads[0].Value, 0.001)
	assert.True(t, leads[0].LastActivity.Equal(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)))

	assert.True(t, leads[1].LastActivity.IsZero())
}

func TestCustomers_HeaderAliases(t *testing.T) {
	input := `customer_id,company,contact
C1,Meridian Textiles,Ayse Demir
`
	customers, skipped, err := Customers(strings.NewReader(input))
	require.NoError(t, err)

	assert.Zero(t, skipped)
	require.Len(t, customers, 1)
	assert.Equal(t, "C1", customers[0].ID)
	assert.Equal(t, "Meridian Textiles", customers[0].CompanyName)
	assert.Equal(t, "Ayse Demir", customers[0].ContactName)
}

func TestCustomers_EmptyFile(t *testing.T) {
	_, _, err := Customers(strings.NewReader(""))
	assert.Error(t, err)
}

func TestInvoices_RaggedRows(t *testing.T) {
	input := `id,customer_id,amount
i1,C1
i2,C2,300
`
	invoices, skipped, err := Invoices(strings.NewReader(input))
	require.NoError(t, err)

	assert.Zero(t, skipped)
	require.Len(t, invoices, 2)
	assert.Zero(t, invoices[0].Amount)
	assert.InDelta(t, 300, invoices[1].Amount, 0.001)
}
