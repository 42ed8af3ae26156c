package models

import (
	"github.com/paygateio/paypalsdk/validation"
)

var (
	planName128        = validation.MaxLength(128)
	planDescription127 = validation.MaxLength(127)
	frequency20        = validation.MaxLength(20)
)

// BillingPlan is a v1 billing plan definition.
type BillingPlan struct {
	ID                  string               `json:"id,omitempty"`
	Name                string               `json:"name,omitempty"`
	Description         string               `json:"description,omitempty"`
	Type                BillingPlanType      `json:"type,omitempty"`
	State               BillingPlanState     `json:"state,omitempty"`
	PaymentDefinitions  []PaymentDefinition  `json:"payment_definitions,omitempty"`
	MerchantPreferences *MerchantPreferences `json:"merchant_preferences,omitempty"`
	CreateTime          *Timestamp           `json:"create_time,omitempty"`
	UpdateTime          *Timestamp           `json:"update_time,omitempty"`
	Links               []Link               `json:"links,omitempty"`
}

// NewBillingPlan creates a validated billing plan request.
func NewBillingPlan(name, description string, planType BillingPlanType) (*BillingPlan, error) {
	if err := validation.Combine(
		validation.And(validation.NotEmpty(), planName128).Validate("name", name),
		validation.And(validation.NotEmpty(), planDescription127).Validate("description", description),
	); err != nil {
		return nil, err
	}
	if !planType.Valid() {
		return nil, validation.NewFieldError("type", "must be a recognised billing plan type")
	}
	return &BillingPlan{Name: name, Description: description, Type: planType}, nil
}

// PaymentDefinition is one recurring payment schedule within a plan.
type PaymentDefinition struct {
	ID                string        `json:"id,omitempty"`
	Name              string        `json:"name"`
	Type              string        `json:"type"`
	Frequency         string        `json:"frequency"`
	FrequencyInterval string        `json:"frequency_interval"`
	Amount            Money         `json:"amount"`
	Cycles            string        `json:"cycles,omitempty"`
	ChargeModels      []ChargeModel `json:"charge_models,omitempty"`
}

// NewPaymentDefinition creates a validated payment definition.
func NewPaymentDefinition(name, frequency, interval string, amount Money) (*PaymentDefinition, error) {
	if err := validation.Combine(
		validation.And(validation.NotEmpty(), planName128).Validate("name", name),
		validation.And(validation.NotEmpty(), frequency20).Validate("frequency", frequency),
		validation.NotEmpty().Validate("frequency_interval", interval),
	); err != nil {
		return nil, err
	}
	return &PaymentDefinition{Name: name, Frequency: frequency, FrequencyInterval: interval, Amount: amount}, nil
}

// ChargeModel is a shipping or tax charge attached to a payment definition.
type ChargeModel struct {
	ID     string `json:"id,omitempty"`
	Type   string `json:"type"`
	Amount Money  `json:"amount"`
}

// MerchantPreferences configure plan-level behaviour.
type MerchantPreferences struct {
	SetupFee                *Money `json:"setup_fee,omitempty"`
	ReturnURL               string `json:"return_url,omitempty"`
	CancelURL               string `json:"cancel_url,omitempty"`
	AutoBillAmount          string `json:"auto_bill_amount,omitempty"`
	InitialFailAmountAction string `json:"initial_fail_amount_action,omitempty"`
	MaxFailAttempts         string `json:"max_fail_attempts,omitempty"`
}

// BillingPlanList is a page of billing plans.
type BillingPlanList struct {
	Plans      []BillingPlan `json:"plans"`
	TotalItems string        `json:"total_items,omitempty"`
	TotalPages string        `json:"total_pages,omitempty"`
	Links      []Link        `json:"links,omitempty"`
}

// Agreement is a billing agreement instantiating a plan for one payer.
type Agreement struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	StartDate   *Timestamp     `json:"start_date,omitempty"`
	Payer       *Payer         `json:"payer,omitempty"`
	Plan        *BillingPlan   `json:"plan,omitempty"`
	State       AgreementState `json:"state,omitempty"`
	Links       []Link         `json:"links,omitempty"`
}

// NewAgreement creates a validated agreement request referencing an existing
// plan by ID.
func NewAgreement(name, description, planID string, start Timestamp) (*Agreement, error) {
	if err := validation.Combine(
		validation.And(validation.NotEmpty(), planName128).Validate("name", name),
		validation.And(validation.NotEmpty(), planDescription127).Validate("description", description),
		validation.NotEmpty().Validate("plan.id", planID),
	); err != nil {
		return nil, err
	}
	return &Agreement{
		Name:        name,
		Description: description,
		StartDate:   &start,
		Plan:        &BillingPlan{ID: planID},
	}, nil
}

// AgreementStateDescriptor carries the note sent when suspending,
// reactivating or cancelling an agreement.
type AgreementStateDescriptor struct {
	Note   string `json:"note,omitempty"`
	Amount *Money `json:"amount,omitempty"`
}
