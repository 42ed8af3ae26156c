package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

var disputeNote2000 = validation.MaxLength(2000)

// Dispute is a customer dispute case.
type Dispute struct {
	DisputeID             string                `json:"dispute_id,omitempty"`
	CreateTime            *Timestamp            `json:"create_time,omitempty"`
	UpdateTime            *Timestamp            `json:"update_time,omitempty"`
	DisputedTransactions  []DisputedTransaction `json:"disputed_transactions,omitempty"`
	Reason                DisputeReason         `json:"reason,omitempty"`
	Status                DisputeStatus         `json:"status,omitempty"`
	DisputeAmount         *Money                `json:"dispute_amount,omitempty"`
	DisputeLifecycleStage DisputeLifecycleStage `json:"dispute_life_cycle_stage,omitempty"`
	Messages              []DisputeMessage      `json:"messages,omitempty"`
	Offer                 *DisputeOffer         `json:"offer,omitempty"`
	SellerResponseDueDate *Timestamp            `json:"seller_response_due_date,omitempty"`
	Links                 []Link                `json:"links,omitempty"`
}

// DisputedTransaction identifies the transaction under dispute.
type DisputedTransaction struct {
	SellerTransactionID string     `json:"seller_transaction_id,omitempty"`
	TransactionStatus   string     `json:"transaction_status,omitempty"`
	GrossAmount         *Money     `json:"gross_amount,omitempty"`
	Items               []Item     `json:"items"`
	CreateTime          *Timestamp `json:"create_time,omitempty"`
}

// MarshalJSON emits the required items key as an empty array rather than
// omitting it.
func (t DisputedTransaction) MarshalJSON() ([]byte, error) {
	type disputedTransaction DisputedTransaction
	encoded := disputedTransaction(t)
	if encoded.Items == nil {
		encoded.Items = []Item{}
	}
	return json.Marshal(encoded)
}

// DisputeMessage is one message in a dispute conversation.
type DisputeMessage struct {
	PostedBy   string     `json:"posted_by,omitempty"`
	TimePosted *Timestamp `json:"time_posted,omitempty"`
	Content    string     `json:"content"`
}

// DisputeOffer is the seller's offer to resolve a dispute.
type DisputeOffer struct {
	BuyerRequestedAmount *Money `json:"buyer_requested_amount,omitempty"`
	SellerOfferedAmount  *Money `json:"seller_offered_amount,omitempty"`
	OfferType            string `json:"offer_type,omitempty"`
}

// DisputeList is a page of disputes.
type DisputeList struct {
	Items []Dispute `json:"items"`
	Links []Link    `json:"links,omitempty"`
}

// AcceptClaimRequest accepts liability for a dispute, optionally refunding a
// specific amount.
type AcceptClaimRequest struct {
	Note            string `json:"note,omitempty"`
	AcceptClaimType string `json:"accept_claim_type,omitempty"`
	RefundAmount    *Money `json:"refund_amount,omitempty"`
}

// NewAcceptClaimRequest creates a validated accept-claim request.
func NewAcceptClaimRequest(note string, refund *Money) (*AcceptClaimRequest, error) {
	if err := disputeNote2000.Validate("note", note); err != nil {
		return nil, err
	}
	return &AcceptClaimRequest{Note: note, RefundAmount: refund}, nil
}

// ProvideEvidenceRequest attaches seller evidence to a dispute.
type ProvideEvidenceRequest struct {
	EvidenceType string         `json:"evidence_type"`
	Notes        string         `json:"notes,omitempty"`
	Documents    []KeyValuePair `json:"documents,omitempty"`
}

// AppealRequest escalates a resolved dispute.
type AppealRequest struct {
	Note string `json:"note"`
}

// NewAppealRequest creates a validated appeal.
func NewAppealRequest(note string) (*AppealRequest, error) {
	if err := validation.And(validation.NotEmpty(), disputeNote2000).Validate("note", note); err != nil {
		return nil, err
	}
	return &AppealRequest{Note: note}, nil
}
