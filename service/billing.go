package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/models"
)

// BillingService drives the v1 billing plan and agreement endpoints.
type BillingService struct {
	Client client.Executor
}

// CreatePlan creates a billing plan in CREATED state.
func (s *BillingService) CreatePlan(ctx context.Context, plan *models.BillingPlan) (*models.BillingPlan, error) {
	var created models.BillingPlan
	if err := s.Client.Execute(ctx, http.MethodPost, "/v1/payments/billing-plans", nil, plan, &created); err != nil {
		return nil, fmt.Errorf("error creating billing plan: [%w]", err)
	}
	log.Debug("created billing plan", log.Data{"plan_id": created.ID})
	return &created, nil
}

// GetPlan fetches a billing plan by ID.
func (s *BillingService) GetPlan(ctx context.Context, planID string) (*models.BillingPlan, error) {
	var plan models.BillingPlan
	path := fmt.Sprintf("/v1/payments/billing-plans/%s", planID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &plan); err != nil {
		return nil, fmt.Errorf("error getting billing plan [%s]: [%w]", planID, err)
	}
	return &plan, nil
}

// ListPlans fetches a page of billing plans.
func (s *BillingService) ListPlans(ctx context.Context, params client.ListParams) (*models.BillingPlanList, error) {
	query, err := params.Values()
	if err != nil {
		return nil, fmt.Errorf("error building plan list query: [%w]", err)
	}
	var list models.BillingPlanList
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/payments/billing-plans", query, nil, &list); err != nil {
		return nil, fmt.Errorf("error listing billing plans: [%w]", err)
	}
	return &list, nil
}

// PatchPlan applies a patch set to a billing plan.
func (s *BillingService) PatchPlan(ctx context.Context, planID string, patches []models.Patch) error {
	path := fmt.Sprintf("/v1/payments/billing-plans/%s", planID)
	if err := s.Client.Execute(ctx, http.MethodPatch, path, nil, patches, nil); err != nil {
		return fmt.Errorf("error patching billing plan [%s]: [%w]", planID, err)
	}
	return nil
}

// ActivatePlan moves a plan from CREATED to ACTIVE via a state patch.
func (s *BillingService) ActivatePlan(ctx context.Context, planID string) error {
	value, err := models.NewPatchValue(string(models.BillingPlanStateActive))
	if err != nil {
		return fmt.Errorf("error building plan activation patch: [%w]", err)
	}
	patch := models.Patch{
		Operation: models.PatchReplace,
		Path:      "/",
		Value:     value,
	}
	if err := s.PatchPlan(ctx, planID, []models.Patch{patch}); err != nil {
		return err
	}
	log.Info("activated billing plan", log.Data{"plan_id": planID})
	return nil
}

// CreateAgreement creates a billing agreement for an active plan.
func (s *BillingService) CreateAgreement(ctx context.Context, agreement *models.Agreement) (*models.Agreement, error) {
	var created models.Agreement
	if err := s.Client.Execute(ctx, http.MethodPost, "/v1/payments/billing-agreements", nil, agreement, &created); err != nil {
		return nil, fmt.Errorf("error creating billing agreement: [%w]", err)
	}
	return &created, nil
}

// ExecuteAgreement completes a payer-approved agreement.
func (s *BillingService) ExecuteAgreement(ctx context.Context, token string) (*models.Agreement, error) {
	var executed models.Agreement
	path := fmt.Sprintf("/v1/payments/billing-agreements/%s/agreement-execute", token)
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, nil, &executed); err != nil {
		return nil, fmt.Errorf("error executing billing agreement: [%w]", err)
	}
	log.Debug("executed billing agreement", log.Data{"agreement_id": executed.ID})
	return &executed, nil
}

// GetAgreement fetches a billing agreement by ID.
func (s *BillingService) GetAgreement(ctx context.Context, agreementID string) (*models.Agreement, error) {
	var agreement models.Agreement
	path := fmt.Sprintf("/v1/payments/billing-agreements/%s", agreementID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &agreement); err != nil {
		return nil, fmt.Errorf("error getting billing agreement [%s]: [%w]", agreementID, err)
	}
	return &agreement, nil
}

// SuspendAgreement suspends an active agreement.
func (s *BillingService) SuspendAgreement(ctx context.Context, agreementID, note string) error {
	return s.changeAgreementState(ctx, agreementID, "suspend", note)
}

// ReactivateAgreement reactivates a suspended agreement.
func (s *BillingService) ReactivateAgreement(ctx context.Context, agreementID, note string) error {
	return s.changeAgreementState(ctx, agreementID, "re-activate", note)
}

// CancelAgreement cancels an agreement.
func (s *BillingService) CancelAgreement(ctx context.Context, agreementID, note string) error {
	return s.changeAgreementState(ctx, agreementID, "cancel", note)
}

func (s *BillingService) changeAgreementState(ctx context.Context, agreementID, action, note string) error {
	path := fmt.Sprintf("/v1/payments/billing-agreements/%s/%s", agreementID, action)
	body := models.AgreementStateDescriptor{Note: note}
	if err := s.Client.Execute(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("error applying [%s] to billing agreement [%s]: [%w]", action, agreementID, err)
	}
	log.Info("changed billing agreement state", log.Data{"agreement_id": agreementID, "action": action})
	return nil
}
