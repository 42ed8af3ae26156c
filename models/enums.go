package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

// decodeEnum decodes a JSON string into a closed vocabulary, failing on
// anything outside the set. Every vocabulary below routes its decode through
// this so no enum ever defaults silently.
func decodeEnum[T ~string](b []byte, kind string, valid map[T]bool) (T, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", validation.NewDecodeError(kind, "expected a JSON string: %v", err)
	}
	v := T(s)
	if !valid[v] {
		return "", validation.NewDecodeError(kind, "unrecognised value %q", s)
	}
	return v, nil
}

// PaymentIntent is the v1 payments intent vocabulary.
type PaymentIntent string

const (
	PaymentIntentSale      PaymentIntent = "sale"
	PaymentIntentAuthorize PaymentIntent = "authorize"
	PaymentIntentOrder     PaymentIntent = "order"
)

var paymentIntents = map[PaymentIntent]bool{
	PaymentIntentSale: true, PaymentIntentAuthorize: true, PaymentIntentOrder: true,
}

// AllPaymentIntents returns every payment intent.
func AllPaymentIntents() []PaymentIntent {
	return []PaymentIntent{PaymentIntentSale, PaymentIntentAuthorize, PaymentIntentOrder}
}

// Valid reports whether the intent is recognised.
func (i PaymentIntent) Valid() bool { return paymentIntents[i] }

func (i *PaymentIntent) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "payment intent", paymentIntents)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// OrderIntent is the v2 orders intent vocabulary. Unlike payment intents it
// is upper-cased on the wire; the two sets must not be unified.
type OrderIntent string

const (
	OrderIntentSale      OrderIntent = "SALE"
	OrderIntentAuthorize OrderIntent = "AUTHORIZE"
)

var orderIntents = map[OrderIntent]bool{OrderIntentSale: true, OrderIntentAuthorize: true}

// AllOrderIntents returns every order intent.
func AllOrderIntents() []OrderIntent {
	return []OrderIntent{OrderIntentSale, OrderIntentAuthorize}
}

// Valid reports whether the intent is recognised.
func (i OrderIntent) Valid() bool { return orderIntents[i] }

func (i *OrderIntent) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "order intent", orderIntents)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// PaymentState is the lifecycle state of a v1 payment.
type PaymentState string

const (
	PaymentStateCreated  PaymentState = "created"
	PaymentStateApproved PaymentState = "approved"
	PaymentStateFailed   PaymentState = "failed"
)

var paymentStates = map[PaymentState]bool{
	PaymentStateCreated: true, PaymentStateApproved: true, PaymentStateFailed: true,
}

// AllPaymentStates returns every payment state.
func AllPaymentStates() []PaymentState {
	return []PaymentState{PaymentStateCreated, PaymentStateApproved, PaymentStateFailed}
}

// Valid reports whether the state is recognised.
func (s PaymentState) Valid() bool { return paymentStates[s] }

func (s *PaymentState) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "payment state", paymentStates)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SaleState is the settlement state of a sale transaction.
type SaleState string

const (
	SaleStateCompleted         SaleState = "completed"
	SaleStatePartiallyRefunded SaleState = "partially_refunded"
	SaleStatePending           SaleState = "pending"
	SaleStateRefunded          SaleState = "refunded"
	SaleStateDenied            SaleState = "denied"
)

var saleStates = map[SaleState]bool{
	SaleStateCompleted: true, SaleStatePartiallyRefunded: true, SaleStatePending: true,
	SaleStateRefunded: true, SaleStateDenied: true,
}

// AllSaleStates returns every sale state.
func AllSaleStates() []SaleState {
	return []SaleState{
		SaleStateCompleted, SaleStatePartiallyRefunded, SaleStatePending,
		SaleStateRefunded, SaleStateDenied,
	}
}

// Valid reports whether the state is recognised.
func (s SaleState) Valid() bool { return saleStates[s] }

func (s *SaleState) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "sale state", saleStates)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// RefundState is the lifecycle state of a refund.
type RefundState string

const (
	RefundStatePending   RefundState = "pending"
	RefundStateCompleted RefundState = "completed"
	RefundStateCancelled RefundState = "cancelled"
	RefundStateFailed    RefundState = "failed"
)

var refundStates = map[RefundState]bool{
	RefundStatePending: true, RefundStateCompleted: true,
	RefundStateCancelled: true, RefundStateFailed: true,
}

// AllRefundStates returns every refund state.
func AllRefundStates() []RefundState {
	return []RefundState{RefundStatePending, RefundStateCompleted, RefundStateCancelled, RefundStateFailed}
}

// Valid reports whether the state is recognised.
func (s RefundState) Valid() bool { return refundStates[s] }

func (s *RefundState) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "refund state", refundStates)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft             InvoiceStatus = "DRAFT"
	InvoiceStatusSent              InvoiceStatus = "SENT"
	InvoiceStatusScheduled         InvoiceStatus = "SCHEDULED"
	InvoiceStatusPaid              InvoiceStatus = "PAID"
	InvoiceStatusMarkedAsPaid      InvoiceStatus = "MARKED_AS_PAID"
	InvoiceStatusCancelled         InvoiceStatus = "CANCELLED"
	InvoiceStatusRefunded          InvoiceStatus = "REFUNDED"
	InvoiceStatusPartiallyPaid     InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPartiallyRefunded InvoiceStatus = "PARTIALLY_REFUNDED"
	InvoiceStatusMarkedAsRefunded  InvoiceStatus = "MARKED_AS_REFUNDED"
	InvoiceStatusUnpaid            InvoiceStatus = "UNPAID"
	InvoiceStatusPaymentPending    InvoiceStatus = "PAYMENT_PENDING"
)

var invoiceStatuses = map[InvoiceStatus]bool{
	InvoiceStatusDraft: true, InvoiceStatusSent: true, InvoiceStatusScheduled: true,
	InvoiceStatusPaid: true, InvoiceStatusMarkedAsPaid: true, InvoiceStatusCancelled: true,
	InvoiceStatusRefunded: true, InvoiceStatusPartiallyPaid: true,
	InvoiceStatusPartiallyRefunded: true, InvoiceStatusMarkedAsRefunded: true,
	InvoiceStatusUnpaid: true, InvoiceStatusPaymentPending: true,
}

// AllInvoiceStatuses returns every invoice status.
func AllInvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{
		InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusScheduled, InvoiceStatusPaid,
		InvoiceStatusMarkedAsPaid, InvoiceStatusCancelled, InvoiceStatusRefunded,
		InvoiceStatusPartiallyPaid, InvoiceStatusPartiallyRefunded, InvoiceStatusMarkedAsRefunded,
		InvoiceStatusUnpaid, InvoiceStatusPaymentPending,
	}
}

// Valid reports whether the status is recognised.
func (s InvoiceStatus) Valid() bool { return invoiceStatuses[s] }

func (s *InvoiceStatus) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "invoice status", invoiceStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// BillingPlanState is the lifecycle state of a billing plan.
type BillingPlanState string

const (
	BillingPlanStateCreated  BillingPlanState = "CREATED"
	BillingPlanStateActive   BillingPlanState = "ACTIVE"
	BillingPlanStateInactive BillingPlanState = "INACTIVE"
	BillingPlanStateDeleted  BillingPlanState = "DELETED"
)

var billingPlanStates = map[BillingPlanState]bool{
	BillingPlanStateCreated: true, BillingPlanStateActive: true,
	BillingPlanStateInactive: true, BillingPlanStateDeleted: true,
}

// AllBillingPlanStates returns every billing plan state.
func AllBillingPlanStates() []BillingPlanState {
	return []BillingPlanState{
		BillingPlanStateCreated, BillingPlanStateActive,
		BillingPlanStateInactive, BillingPlanStateDeleted,
	}
}

// Valid reports whether the state is recognised.
func (s BillingPlanState) Valid() bool { return billingPlanStates[s] }

func (s *BillingPlanState) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "billing plan state", billingPlanStates)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// BillingPlanType distinguishes plans with a fixed number of cycles from
// open-ended ones.
type BillingPlanType string

const (
	BillingPlanTypeFixed    BillingPlanType = "FIXED"
	BillingPlanTypeInfinite BillingPlanType = "INFINITE"
)

var billingPlanTypes = map[BillingPlanType]bool{
	BillingPlanTypeFixed: true, BillingPlanTypeInfinite: true,
}

// AllBillingPlanTypes returns every billing plan type.
func AllBillingPlanTypes() []BillingPlanType {
	return []BillingPlanType{BillingPlanTypeFixed, BillingPlanTypeInfinite}
}

// Valid reports whether the type is recognised.
func (t BillingPlanType) Valid() bool { return billingPlanTypes[t] }

func (t *BillingPlanType) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "billing plan type", billingPlanTypes)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// AgreementState is the lifecycle state of a billing agreement.
type AgreementState string

const (
	AgreementStateActive      AgreementState = "ACTIVE"
	AgreementStateCancelled   AgreementState = "CANCELLED"
	AgreementStateCompleted   AgreementState = "COMPLETED"
	AgreementStateCreated     AgreementState = "CREATED"
	AgreementStatePending     AgreementState = "PENDING"
	AgreementStateReactivated AgreementState = "REACTIVATED"
	AgreementStateSuspended   AgreementState = "SUSPENDED"
)

var agreementStates = map[AgreementState]bool{
	AgreementStateActive: true, AgreementStateCancelled: true, AgreementStateCompleted: true,
	AgreementStateCreated: true, AgreementStatePending: true, AgreementStateReactivated: true,
	AgreementStateSuspended: true,
}

// AllAgreementStates returns every agreement state.
func AllAgreementStates() []AgreementState {
	return []AgreementState{
		AgreementStateActive, AgreementStateCancelled, AgreementStateCompleted,
		AgreementStateCreated, AgreementStatePending, AgreementStateReactivated,
		AgreementStateSuspended,
	}
}

// Valid reports whether the state is recognised.
func (s AgreementState) Valid() bool { return agreementStates[s] }

func (s *AgreementState) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "agreement state", agreementStates)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DisputeStatus is the lifecycle state of a customer dispute.
type DisputeStatus string

const (
	DisputeStatusOpen                     DisputeStatus = "OPEN"
	DisputeStatusWaitingForBuyerResponse  DisputeStatus = "WAITING_FOR_BUYER_RESPONSE"
	DisputeStatusWaitingForSellerResponse DisputeStatus = "WAITING_FOR_SELLER_RESPONSE"
	DisputeStatusUnderReview              DisputeStatus = "UNDER_REVIEW"
	DisputeStatusResolved                 DisputeStatus = "RESOLVED"
	DisputeStatusOther                    DisputeStatus = "OTHER"
)

var disputeStatuses = map[DisputeStatus]bool{
	DisputeStatusOpen: true, DisputeStatusWaitingForBuyerResponse: true,
	DisputeStatusWaitingForSellerResponse: true, DisputeStatusUnderReview: true,
	DisputeStatusResolved: true, DisputeStatusOther: true,
}

// AllDisputeStatuses returns every dispute status.
func AllDisputeStatuses() []DisputeStatus {
	return []DisputeStatus{
		DisputeStatusOpen, DisputeStatusWaitingForBuyerResponse,
		DisputeStatusWaitingForSellerResponse, DisputeStatusUnderReview,
		DisputeStatusResolved, DisputeStatusOther,
	}
}

// Valid reports whether the status is recognised.
func (s DisputeStatus) Valid() bool { return disputeStatuses[s] }

func (s *DisputeStatus) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "dispute status", disputeStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DisputeReason is the buyer's stated reason for a dispute.
type DisputeReason string

const (
	DisputeReasonNotReceived        DisputeReason = "MERCHANDISE_OR_SERVICE_NOT_RECEIVED"
	DisputeReasonNotAsDescribed     DisputeReason = "MERCHANDISE_OR_SERVICE_NOT_AS_DESCRIBED"
	DisputeReasonUnauthorised       DisputeReason = "UNAUTHORISED"
	DisputeReasonCreditNotProcessed DisputeReason = "CREDIT_NOT_PROCESSED"
	DisputeReasonDuplicate          DisputeReason = "DUPLICATE_TRANSACTION"
	DisputeReasonIncorrectAmount    DisputeReason = "INCORRECT_AMOUNT"
	DisputeReasonOtherMeans         DisputeReason = "PAYMENT_BY_OTHER_MEANS"
	DisputeReasonCanceledBilling    DisputeReason = "CANCELED_RECURRING_BILLING"
	DisputeReasonRemittance         DisputeReason = "PROBLEM_WITH_REMITTANCE"
	DisputeReasonOther              DisputeReason = "OTHER"
)

var disputeReasons = map[DisputeReason]bool{
	DisputeReasonNotReceived: true, DisputeReasonNotAsDescribed: true,
	DisputeReasonUnauthorised: true, DisputeReasonCreditNotProcessed: true,
	DisputeReasonDuplicate: true, DisputeReasonIncorrectAmount: true,
	DisputeReasonOtherMeans: true, DisputeReasonCanceledBilling: true,
	DisputeReasonRemittance: true, DisputeReasonOther: true,
}

// AllDisputeReasons returns every dispute reason.
func AllDisputeReasons() []DisputeReason {
	return []DisputeReason{
		DisputeReasonNotReceived, DisputeReasonNotAsDescribed, DisputeReasonUnauthorised,
		DisputeReasonCreditNotProcessed, DisputeReasonDuplicate, DisputeReasonIncorrectAmount,
		DisputeReasonOtherMeans, DisputeReasonCanceledBilling, DisputeReasonRemittance,
		DisputeReasonOther,
	}
}

// Valid reports whether the reason is recognised.
func (r DisputeReason) Valid() bool { return disputeReasons[r] }

func (r *DisputeReason) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "dispute reason", disputeReasons)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// DisputeLifecycleStage is how far a dispute has escalated.
type DisputeLifecycleStage string

const (
	DisputeStageInquiry        DisputeLifecycleStage = "INQUIRY"
	DisputeStageChargeback     DisputeLifecycleStage = "CHARGEBACK"
	DisputeStagePreArbitration DisputeLifecycleStage = "PRE_ARBITRATION"
	DisputeStageArbitration    DisputeLifecycleStage = "ARBITRATION"
)

var disputeStages = map[DisputeLifecycleStage]bool{
	DisputeStageInquiry: true, DisputeStageChargeback: true,
	DisputeStagePreArbitration: true, DisputeStageArbitration: true,
}

// AllDisputeLifecycleStages returns every lifecycle stage.
func AllDisputeLifecycleStages() []DisputeLifecycleStage {
	return []DisputeLifecycleStage{
		DisputeStageInquiry, DisputeStageChargeback,
		DisputeStagePreArbitration, DisputeStageArbitration,
	}
}

// Valid reports whether the stage is recognised.
func (s DisputeLifecycleStage) Valid() bool { return disputeStages[s] }

func (s *DisputeLifecycleStage) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "dispute lifecycle stage", disputeStages)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// VerificationStatus is the outcome of a webhook signature verification.
type VerificationStatus string

const (
	VerificationSuccess VerificationStatus = "SUCCESS"
	VerificationFailure VerificationStatus = "FAILURE"
)

var verificationStatuses = map[VerificationStatus]bool{
	VerificationSuccess: true, VerificationFailure: true,
}

// AllVerificationStatuses returns every verification status.
func AllVerificationStatuses() []VerificationStatus {
	return []VerificationStatus{VerificationSuccess, VerificationFailure}
}

// Valid reports whether the status is recognised.
func (s VerificationStatus) Valid() bool { return verificationStatuses[s] }

func (s *VerificationStatus) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "verification status", verificationStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// PaymentMethod is the funding method vocabulary.
type PaymentMethod string

const (
	PaymentMethodPayPal     PaymentMethod = "paypal"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

var paymentMethods = map[PaymentMethod]bool{
	PaymentMethodPayPal: true, PaymentMethodCreditCard: true,
}

// AllPaymentMethods returns every payment method.
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodPayPal, PaymentMethodCreditCard}
}

// Valid reports whether the method is recognised.
func (m PaymentMethod) Valid() bool { return paymentMethods[m] }

func (m *PaymentMethod) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "payment method", paymentMethods)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// PhoneType classifies a contact phone number.
type PhoneType string

const (
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeWork   PhoneType = "WORK"
	PhoneTypeMobile PhoneType = "MOBILE"
	PhoneTypeFax    PhoneType = "FAX"
	PhoneTypeOther  PhoneType = "OTHER"
)

var phoneTypes = map[PhoneType]bool{
	PhoneTypeHome: true, PhoneTypeWork: true, PhoneTypeMobile: true,
	PhoneTypeFax: true, PhoneTypeOther: true,
}

// AllPhoneTypes returns every phone type.
func AllPhoneTypes() []PhoneType {
	return []PhoneType{PhoneTypeHome, PhoneTypeWork, PhoneTypeMobile, PhoneTypeFax, PhoneTypeOther}
}

// Valid reports whether the type is recognised.
func (t PhoneType) Valid() bool { return phoneTypes[t] }

func (t *PhoneType) UnmarshalJSON(b []byte) error {
	v, err := decodeEnum(b, "phone type", phoneTypes)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
