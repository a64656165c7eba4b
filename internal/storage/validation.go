// Package storage provides the data persistence layer for the pulse application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/halcyonic/pulse/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrEmptySlice      = errors.New("slice cannot be empty")
	ErrInvalidCustomer = errors.New("invalid customer")
	ErrInvalidInvoice  = errors.New("invalid invoice")
	ErrInvalidLead     = errors.New("invalid lead")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCustomers validates a slice of customers.
func validateCustomers(customers []model.Customer) error {
	if customers == nil {
		return fmt.Errorf("%w: customers", ErrNilParameter)
	}
	if len(customers) == 0 {
		return fmt.Errorf("%w: customers", ErrEmptySlice)
	}

	for i, cust := range customers {
		if cust.ID == "" {
			return fmt.Errorf("customer at index %d: %w: missing ID", i, ErrInvalidCustomer)
		}
		if cust.CompanyName == "" {
			return fmt.Errorf("customer at index %d: %w: missing company name", i, ErrInvalidCustomer)
		}
	}
	return nil
}

// validateInvoices validates a slice of invoices. An invoice without a
// usable date is still storable; the classification engine excludes it
// from date arithmetic on read.
func validateInvoices(invoices []model.Invoice) error {
	if invoices == nil {
		return fmt.Errorf("%w: invoices", ErrNilParameter)
	}
	if len(invoices) == 0 {
		return fmt.Errorf("%w: invoices", ErrEmptySlice)
	}

	for i, inv := range invoices {
		if inv.ID == "" {
			return fmt.Errorf("invoice at index %d: %w: missing ID", i, ErrInvalidInvoice)
		}
		if inv.CustomerID == "" && inv.CustomerName == "" {
			return fmt.Errorf("invoice at index %d: %w: no customer correlation", i, ErrInvalidInvoice)
		}
	}
	return nil
}

// validateLeads validates a slice of leads.
func validateLeads(leads []model.Lead) error {
	if leads == nil {
		return fmt.Errorf("%w: leads", ErrNilParameter)
	}
	if len(leads) == 0 {
		return fmt.Errorf("%w: leads", ErrEmptySlice)
	}

	for i, lead := range leads {
		if lead.ID == "" {
			return fmt.Errorf("lead at index %d: %w: missing ID", i, ErrInvalidLead)
		}
		if lead.Name == "" {
			return fmt.Errorf("lead at index %d: %w: missing name", i, ErrInvalidLead)
		}
	}
	return nil
}
