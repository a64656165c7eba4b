// Package importer reads customers, invoices and leads from CSV exports.
// Parsing is deliberately forgiving: unknown columns are ignored and
// unparseable dates load as zero timestamps, which the classification
// engine then excludes from date arithmetic.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/halcyonic/pulse/internal/common"
	"github.com/halcyonic/pulse/internal/model"
)

// dateLayouts are tried in order when parsing timestamps from CSV
// fields. Exports in the wild mix ISO dates, datetimes and the
// day-first format of the legacy system.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
}

// ParseDate parses a CSV timestamp field. The second return is false
// when the value is empty or matches none of the known layouts.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// header maps lower-cased column names to their positions.
type header map[string]int

func readHeader(r *csv.Reader) (header, error) {
	record, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header row", common.ErrMalformedFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	h := make(header, len(record))
	for i, name := range record {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h, nil
}

// field returns the named column of a record, or "" when the column is
// absent. The first present alias wins.
func (h header) field(record []string, names ...string) string {
	for _, name := range names {
		idx, ok := h[name]
		if !ok || idx >= len(record) {
			continue
		}
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// Customers reads customer records from a CSV stream. Records without an
// id or company name are skipped and counted in the second return.
func Customers(reader io.Reader) ([]model.Customer, int, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	h, err := readHeader(r)
	if err != nil {
		return nil, 0, err
	}

	var customers []model.Customer
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read record: %w", err)
		}

		cust := model.Customer{
			ID:          h.field(record, "id", "customer_id"),
			CompanyName: h.field(record, "company_name", "company", "name"),
			Sector:      h.field(record, "sector"),
			Country:     h.field(record, "country"),
			ContactName: h.field(record, "contact_name", "contact"),
			Email:       h.field(record, "email"),
			Phone:       h.field(record, "phone"),
		}
		if created, ok := ParseDate(h.field(record, "created_at", "created")); ok {
			cust.CreatedAt = created
		}

		if cust.ID == "" || cust.CompanyName == "" {
			skipped++
			continue
		}
		customers = append(customers, cust)
	}

	return customers, skipped, nil
}

// Invoices reads invoice records from a CSV stream. Records without an
// id or any customer correlation are skipped; records with unparseable
// dates are kept with a zero Date.
func Invoices(reader io.Reader) ([]model.Invoice, int, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	h, err := readHeader(r)
	if err != nil {
		return nil, 0, err
	}

	var invoices []model.Invoice
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read record: %w", err)
		}

		inv := model.Invoice{
			ID:           h.field(record, "id", "invoice_id"),
			CustomerID:   h.field(record, "customer_id"),
			CustomerName: h.field(record, "customer_name", "customer"),
			Number:       h.field(record, "number", "invoice_number"),
			Currency:     h.field(record, "currency"),
		}
		if amount := h.field(record, "amount", "total"); amount != "" {
			if v, err := strconv.ParseFloat(amount, 64); err == nil {
				inv.Amount = v
			}
		}
		if date, ok := ParseDate(h.field(record, "date", "issue_date")); ok {
			inv.Date = date
		}
		if created, ok := ParseDate(h.field(record, "created_at", "created")); ok {
			inv.CreatedAt = created
		}

		if inv.ID == "" || (inv.CustomerID == "" && inv.CustomerName == "") {
			skipped++
			continue
		}
		invoices = append(invoices, inv)
	}

	return invoices, skipped, nil
}

// Leads reads lead records from a CSV stream. Records without an id or
// name are skipped; records with unparseable activity dates are kept
// with a zero LastActivity.
func Leads(reader io.Reader) ([]model.Lead, int, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	h, err := readHeader(r)
	if err != nil {
		return nil, 0, err
	}

	var leads []model.Lead
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read record: %w", err)
		}

		lead := model.Lead{
			ID:      h.field(record, "id", "lead_id"),
			Name:    h.field(record, "name", "lead_name"),
			Company: h.field(record, "company"),
			Source:  h.field(record, "source"),
			Stage:   h.field(record, "stage", "status"),
		}
		if value := h.field(record, "value", "amount"); value != "" {
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				lead.Value = v
			}
		}
		if activity, ok := ParseDate(h.field(record, "last_activity", "last_contact")); ok {
			lead.LastActivity = activity
		}
		if created, ok := ParseDate(h.field(record, "created_at", "created")); ok {
			lead.CreatedAt = created
		}

		if lead.ID == "" || lead.Name == "" {
			skipped++
			continue
		}
		leads = append(leads, lead)
	}

	return leads, skipped, nil
}
