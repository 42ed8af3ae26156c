// Package service provides the resource controllers. Each service assembles
// the method, path and body for its endpoints and sends them through a
// client.Executor; all validation lives in the models.
package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/models"
)

// PaymentsService drives the v1 payments endpoints.
type PaymentsService struct {
	Client client.Executor
}

// CreatePayment creates a payment and returns the server-assigned resource.
func (s *PaymentsService) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	var created models.Payment
	if err := s.Client.Execute(ctx, http.MethodPost, "/v1/payments/payment", nil, payment, &created); err != nil {
		return nil, fmt.Errorf("error creating payment: [%w]", err)
	}
	log.Debug("created payment", log.Data{"payment_id": created.ID})
	return &created, nil
}

// GetPayment fetches a payment by ID.
func (s *PaymentsService) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	var payment models.Payment
	path := fmt.Sprintf("/v1/payments/payment/%s", paymentID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &payment); err != nil {
		return nil, fmt.Errorf("error getting payment [%s]: [%w]", paymentID, err)
	}
	return &payment, nil
}

// ListPayments fetches a page of payments.
func (s *PaymentsService) ListPayments(ctx context.Context, params client.ListParams) (*models.PaymentList, error) {
	query, err := params.Values()
	if err != nil {
		return nil, fmt.Errorf("error building payment list query: [%w]", err)
	}
	var list models.PaymentList
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/payments/payment", query, nil, &list); err != nil {
		return nil, fmt.Errorf("error listing payments: [%w]", err)
	}
	return &list, nil
}

// ExecutePayment completes an approved payment on behalf of the given payer.
func (s *PaymentsService) ExecutePayment(ctx context.Context, paymentID, payerID string) (*models.Payment, error) {
	var executed models.Payment
	path := fmt.Sprintf("/v1/payments/payment/%s/execute", paymentID)
	body := models.PaymentExecution{PayerID: payerID}
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, body, &executed); err != nil {
		return nil, fmt.Errorf("error executing payment [%s]: [%w]", paymentID, err)
	}
	log.Debug("executed payment", log.Data{"payment_id": paymentID, "state": executed.State})
	return &executed, nil
}

// GetSale fetches a completed sale by ID.
func (s *PaymentsService) GetSale(ctx context.Context, saleID string) (*models.Sale, error) {
	var sale models.Sale
	path := fmt.Sprintf("/v1/payments/sale/%s", saleID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &sale); err != nil {
		return nil, fmt.Errorf("error getting sale [%s]: [%w]", saleID, err)
	}
	if err := models.CheckRequired(sale); err != nil {
		return nil, fmt.Errorf("sale response missing required fields: [%w]", err)
	}
	return &sale, nil
}

// RefundSale refunds a sale, fully when request.Amount is nil.
func (s *PaymentsService) RefundSale(ctx context.Context, saleID string, request *models.RefundRequest) (*models.Refund, error) {
	if request == nil {
		request = &models.RefundRequest{}
	}
	var refund models.Refund
	path := fmt.Sprintf("/v1/payments/sale/%s/refund", saleID)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, request, &refund); err != nil {
		return nil, fmt.Errorf("error refunding sale [%s]: [%w]", saleID, err)
	}
	if err := models.CheckRequired(refund); err != nil {
		return nil, fmt.Errorf("refund response missing required fields: [%w]", err)
	}
	log.Info("refunded sale", log.Data{"sale_id": saleID, "refund_id": refund.ID})
	return &refund, nil
}

// GetRefund fetches a refund by ID.
func (s *PaymentsService) GetRefund(ctx context.Context, refundID string) (*models.Refund, error) {
	var refund models.Refund
	path := fmt.Sprintf("/v1/payments/refund/%s", refundID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &refund); err != nil {
		return nil, fmt.Errorf("error getting refund [%s]: [%w]", refundID, err)
	}
	return &refund, nil
}
