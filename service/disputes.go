package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/models"
)

// DisputesService drives the v1 customer dispute endpoints.
type DisputesService struct {
	Client client.Executor
}

// GetDispute fetches a dispute by ID.
func (s *DisputesService) GetDispute(ctx context.Context, disputeID string) (*models.Dispute, error) {
	var dispute models.Dispute
	path := fmt.Sprintf("/v1/customer/disputes/%s", disputeID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &dispute); err != nil {
		return nil, fmt.Errorf("error getting dispute [%s]: [%w]", disputeID, err)
	}
	return &dispute, nil
}

// ListDisputes fetches a page of disputes.
func (s *DisputesService) ListDisputes(ctx context.Context, params client.ListParams) (*models.DisputeList, error) {
	query, err := params.Values()
	if err != nil {
		return nil, fmt.Errorf("error building dispute list query: [%w]", err)
	}
	var list models.DisputeList
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/customer/disputes", query, nil, &list); err != nil {
		return nil, fmt.Errorf("error listing disputes: [%w]", err)
	}
	return &list, nil
}

// AcceptClaim accepts liability for a dispute.
func (s *DisputesService) AcceptClaim(ctx context.Context, disputeID string, request *models.AcceptClaimRequest) error {
	path := fmt.Sprintf("/v1/customer/disputes/%s/accept-claim", disputeID)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, request, nil); err != nil {
		return fmt.Errorf("error accepting dispute claim [%s]: [%w]", disputeID, err)
	}
	log.Info("accepted dispute claim", log.Data{"dispute_id": disputeID})
	return nil
}

// ProvideEvidence attaches seller evidence to a dispute.
func (s *DisputesService) ProvideEvidence(ctx context.Context, disputeID string, request *models.ProvideEvidenceRequest) error {
	path := fmt.Sprintf("/v1/customer/disputes/%s/provide-evidence", disputeID)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, request, nil); err != nil {
		return fmt.Errorf("error providing dispute evidence [%s]: [%w]", disputeID, err)
	}
	return nil
}

// Appeal escalates a resolved dispute.
func (s *DisputesService) Appeal(ctx context.Context, disputeID string, request *models.AppealRequest) error {
	path := fmt.Sprintf("/v1/customer/disputes/%s/appeal", disputeID)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, request, nil); err != nil {
		return fmt.Errorf("error appealing dispute [%s]: [%w]", disputeID, err)
	}
	log.Info("appealed dispute", log.Data{"dispute_id": disputeID})
	return nil
}
