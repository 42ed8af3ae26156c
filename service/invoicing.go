package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/models"
)

// InvoicingService drives the v1 invoicing endpoints.
type InvoicingService struct {
	Client client.Executor
}

// CreateInvoice creates a draft invoice.
func (s *InvoicingService) CreateInvoice(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	var created models.Invoice
	if err := s.Client.Execute(ctx, http.MethodPost, "/v1/invoicing/invoices", nil, invoice, &created); err != nil {
		return nil, fmt.Errorf("error creating invoice: [%w]", err)
	}
	log.Debug("created invoice", log.Data{"invoice_id": created.ID})
	return &created, nil
}

// GetInvoice fetches an invoice by ID.
func (s *InvoicingService) GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice
	path := fmt.Sprintf("/v1/invoicing/invoices/%s", invoiceID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &invoice); err != nil {
		return nil, fmt.Errorf("error getting invoice [%s]: [%w]", invoiceID, err)
	}
	return &invoice, nil
}

// ListInvoices fetches a page of the merchant's invoices.
func (s *InvoicingService) ListInvoices(ctx context.Context, params client.ListParams) (*models.InvoiceList, error) {
	query, err := params.Values()
	if err != nil {
		return nil, fmt.Errorf("error building invoice list query: [%w]", err)
	}
	var list models.InvoiceList
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/invoicing/invoices", query, nil, &list); err != nil {
		return nil, fmt.Errorf("error listing invoices: [%w]", err)
	}
	return &list, nil
}

// UpdateInvoice replaces an invoice draft.
func (s *InvoicingService) UpdateInvoice(ctx context.Context, invoiceID string, invoice *models.Invoice) (*models.Invoice, error) {
	var updated models.Invoice
	path := fmt.Sprintf("/v1/invoicing/invoices/%s", invoiceID)
	if err := s.Client.Execute(ctx, http.MethodPut, path, nil, invoice, &updated); err != nil {
		return nil, fmt.Errorf("error updating invoice [%s]: [%w]", invoiceID, err)
	}
	return &updated, nil
}

// DeleteInvoice deletes a draft invoice.
func (s *InvoicingService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	path := fmt.Sprintf("/v1/invoicing/invoices/%s", invoiceID)
	if err := s.Client.Execute(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("error deleting invoice [%s]: [%w]", invoiceID, err)
	}
	return nil
}

// SendInvoice sends an invoice to its recipients.
func (s *InvoicingService) SendInvoice(ctx context.Context, invoiceID string) error {
	path := fmt.Sprintf("/v1/invoicing/invoices/%s/send", invoiceID)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return fmt.Errorf("error sending invoice [%s]: [%w]", invoiceID, err)
	}
	log.Info("sent invoice", log.Data{"invoice_id": invoiceID})
	return nil
}

// RemindInvoice sends a payment reminder for a sent invoice.
func (s *InvoicingService) RemindInvoice(ctx context.Context, invoiceID string, notify models.NotifyRequest) error {
	path := fmt.Sprintf("/v1/invoicing/invoices/%s/remind", invoiceID)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, notify, nil); err != nil {
		return fmt.Errorf("error sending invoice reminder [%s]: [%w]", invoiceID, err)
	}
	return nil
}

// CancelInvoice cancels a sent invoice and notifies the configured parties.
func (s *InvoicingService) CancelInvoice(ctx context.Context, invoiceID string, notify models.NotifyRequest) error {
	path := fmt.Sprintf("/v1/invoicing/invoices/%s/cancel", invoiceID)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, notify, nil); err != nil {
		return fmt.Errorf("error cancelling invoice [%s]: [%w]", invoiceID, err)
	}
	log.Info("cancelled invoice", log.Data{"invoice_id": invoiceID})
	return nil
}

// RecordPayment marks an invoice as paid outside PayPal.
func (s *InvoicingService) RecordPayment(ctx context.Context, invoiceID string, payment models.RecordedPayment) error {
	path := fmt.Sprintf("/v1/invoicing/invoices/%s/record-payment", invoiceID)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, payment, nil); err != nil {
		return fmt.Errorf("error recording invoice payment [%s]: [%w]", invoiceID, err)
	}
	return nil
}

// NextInvoiceNumber fetches the number the API will assign next.
func (s *InvoicingService) NextInvoiceNumber(ctx context.Context) (*models.InvoiceNumber, error) {
	var number models.InvoiceNumber
	if err := s.Client.Execute(ctx, http.MethodPost, "/v1/invoicing/invoices/next-invoice-number", nil, nil, &number); err != nil {
		return nil, fmt.Errorf("error getting next invoice number: [%w]", err)
	}
	if err := models.CheckRequired(number); err != nil {
		return nil, fmt.Errorf("invoice number response missing required fields: [%w]", err)
	}
	return &number, nil
}
