package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

var (
	messageContent2000 = validation.MaxLength(2000)
	invoiceNote4000    = validation.MaxLength(4000)
	reference120       = validation.MaxLength(120)
	term40             = validation.MaxLength(40)
	businessName300    = validation.MaxLength(300)
)

// Message is a note attached to an invoice thread. Content is a constrained
// value: construction and every Set re-run the 2000-character bound, and a
// failed Set leaves the previous content in place.
type Message struct {
	content validation.Constrained[string]
}

// NewMessage creates a message with validated content.
func NewMessage(content string) (*Message, error) {
	v, err := validation.NewConstrained("content", messageContent2000, content)
	if err != nil {
		return nil, err
	}
	return &Message{content: v}, nil
}

// Content returns the message body.
func (m *Message) Content() string {
	return m.content.Value()
}

// SetContent replaces the message body if the bound accepts it.
func (m *Message) SetContent(content string) error {
	return m.content.Set(content)
}

type messageWire struct {
	Content string `json:"content"`
}

// MarshalJSON encodes the content under its wire key.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageWire{Content: m.content.Value()})
}

// UnmarshalJSON validates incoming content against the same bound.
func (m *Message) UnmarshalJSON(b []byte) error {
	var wire messageWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	parsed, err := NewMessage(wire.Content)
	if err != nil {
		return validation.NewDecodeError("message", "%v", err)
	}
	*m = *parsed
	return nil
}

// Invoice is an invoicing resource. ID, status and metadata are
// server-assigned.
type Invoice struct {
	ID             string        `json:"id,omitempty"`
	Number         string        `json:"number,omitempty"`
	Status         InvoiceStatus `json:"status,omitempty"`
	MerchantInfo   *MerchantInfo `json:"merchant_info,omitempty"`
	BillingInfo    []BillingInfo `json:"billing_info,omitempty"`
	ShippingInfo   *ShippingInfo `json:"shipping_info,omitempty"`
	Items          []InvoiceItem `json:"items"`
	InvoiceDate    *Date         `json:"invoice_date,omitempty"`
	PaymentTerm    *PaymentTerm  `json:"payment_term,omitempty"`
	Reference      string        `json:"reference,omitempty"`
	Note           string        `json:"note,omitempty"`
	TermsOfService string        `json:"terms,omitempty"`
	TotalAmount    *Money        `json:"total_amount,omitempty"`
	Metadata       *Metadata     `json:"metadata,omitempty"`
	Links          []Link        `json:"links,omitempty"`
}

// NewInvoice creates an invoice for the given merchant.
func NewInvoice(merchant MerchantInfo, items ...InvoiceItem) (*Invoice, error) {
	if err := businessName300.Validate("merchant_info.business_name", merchant.BusinessName); err != nil {
		return nil, err
	}
	return &Invoice{MerchantInfo: &merchant, Items: items}, nil
}

// SetNote sets the note to the payer.
func (inv *Invoice) SetNote(note string) error {
	if err := invoiceNote4000.Validate("note", note); err != nil {
		return err
	}
	inv.Note = note
	return nil
}

// SetReference sets the merchant reference.
func (inv *Invoice) SetReference(reference string) error {
	if err := reference120.Validate("reference", reference); err != nil {
		return err
	}
	inv.Reference = reference
	return nil
}

// MarshalJSON emits the required items key as an empty array rather than
// omitting it when no items are set.
func (inv Invoice) MarshalJSON() ([]byte, error) {
	type invoice Invoice
	encoded := invoice(inv)
	if encoded.Items == nil {
		encoded.Items = []InvoiceItem{}
	}
	return json.Marshal(encoded)
}

// InvoiceItem is a single invoice line.
type InvoiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
	Date        *Date  `json:"date,omitempty"`
}

// NewInvoiceItem creates a validated invoice line.
func NewInvoiceItem(name string, quantity int, unitPrice Money) (*InvoiceItem, error) {
	if err := validation.Combine(
		validation.And(validation.NotEmpty(), itemName127).Validate("name", name),
		validation.Between(1, 10000).Validate("quantity", quantity),
	); err != nil {
		return nil, err
	}
	return &InvoiceItem{Name: name, Quantity: quantity, UnitPrice: unitPrice}, nil
}

// MerchantInfo identifies the sender of an invoice.
type MerchantInfo struct {
	Email        string   `json:"email,omitempty"`
	BusinessName string   `json:"business_name,omitempty"`
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty"`
	Address      *Address `json:"address,omitempty"`
	Phone        *Phone   `json:"phone,omitempty"`
}

// BillingInfo identifies an invoice recipient.
type BillingInfo struct {
	Email          string   `json:"email,omitempty"`
	FirstName      string   `json:"first_name,omitempty"`
	LastName       string   `json:"last_name,omitempty"`
	BusinessName   string   `json:"business_name,omitempty"`
	Address        *Address `json:"address,omitempty"`
	Language       string   `json:"language,omitempty"`
	AdditionalInfo string   `json:"additional_info,omitempty"`
}

// ShippingInfo is the delivery target of an invoice.
type ShippingInfo struct {
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty"`
	BusinessName string   `json:"business_name,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

// PaymentTerm sets when an invoice falls due. The due date is a date-only
// value and is wrapped under date_no_time on the wire.
type PaymentTerm struct {
	TermType string `json:"term_type,omitempty"`
	DueDate  *Date  `json:"due_date,omitempty"`
}

// NewPaymentTerm creates a validated payment term.
func NewPaymentTerm(termType string, dueDate *Date) (*PaymentTerm, error) {
	if err := term40.Validate("term_type", termType); err != nil {
		return nil, err
	}
	return &PaymentTerm{TermType: termType, DueDate: dueDate}, nil
}

// Metadata is the server-maintained audit trail of an invoice.
type Metadata struct {
	CreatedDate     *Timestamp `json:"created_date,omitempty"`
	CreatedBy       string     `json:"created_by,omitempty"`
	LastUpdatedDate *Timestamp `json:"last_updated_date,omitempty"`
	LastUpdatedBy   string     `json:"last_updated_by,omitempty"`
	FirstSentDate   *Timestamp `json:"first_sent_date,omitempty"`
	LastSentDate    *Timestamp `json:"last_sent_date,omitempty"`
	PayerViewURL    string     `json:"payer_view_url,omitempty"`
}

// InvoiceNumber is the next invoice number the API will assign.
type InvoiceNumber struct {
	Number string `json:"number" validate:"required"`
}

// InvoiceList is a page of invoices.
type InvoiceList struct {
	TotalCount int       `json:"total_count,omitempty"`
	Invoices   []Invoice `json:"invoices"`
}

// RecordedPayment marks an invoice as paid outside PayPal.
type RecordedPayment struct {
	Method string `json:"method"`
	Date   *Date  `json:"date,omitempty"`
	Note   string `json:"note,omitempty"`
	Amount *Money `json:"amount,omitempty"`
}

// NotifyRequest carries the optional note sent with a reminder or
// cancellation notification.
type NotifyRequest struct {
	Subject        string `json:"subject,omitempty"`
	Note           string `json:"note,omitempty"`
	SendToMerchant bool   `json:"send_to_merchant"`
	SendToPayer    bool   `json:"send_to_payer"`
}
