package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

var (
	description127   = validation.MaxLength(127)
	custom256        = validation.MaxLength(256)
	invoiceNumber127 = validation.MaxLength(127)
	softDescriptor22 = validation.MaxLength(22)
	itemName127      = validation.MaxLength(127)
	itemSKU127       = validation.MaxLength(127)
)

// Payment is a v1 payment resource. ID, state, timestamps and links are
// server-assigned and never sent by the client.
type Payment struct {
	ID           string        `json:"id,omitempty"`
	Intent       PaymentIntent `json:"intent"`
	Payer        *Payer        `json:"payer,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
	State        PaymentState  `json:"state,omitempty"`
	RedirectURLs *RedirectURLs `json:"redirect_urls,omitempty"`
	NoteToPayer  string        `json:"note_to_payer,omitempty"`
	CreateTime   *Timestamp    `json:"create_time,omitempty"`
	UpdateTime   *Timestamp    `json:"update_time,omitempty"`
	Links        []Link        `json:"links,omitempty"`
}

// NewPayment creates a payment request with the given intent and payer.
func NewPayment(intent PaymentIntent, payer Payer, transactions ...Transaction) (*Payment, error) {
	if !intent.Valid() {
		return nil, validation.NewFieldError("intent", "must be a recognised payment intent")
	}
	if !payer.PaymentMethod.Valid() {
		return nil, validation.NewFieldError("payer.payment_method", "must be a recognised payment method")
	}
	return &Payment{Intent: intent, Payer: &payer, Transactions: transactions}, nil
}

// RedirectURLs tell the API where to send the payer after approval.
type RedirectURLs struct {
	ReturnURL string `json:"return_url,omitempty"`
	CancelURL string `json:"cancel_url,omitempty"`
}

// Transaction is one purchase unit of a payment.
type Transaction struct {
	Amount         Amount    `json:"amount"`
	Description    string    `json:"description,omitempty"`
	Custom         string    `json:"custom,omitempty"`
	InvoiceNumber  string    `json:"invoice_number,omitempty"`
	SoftDescriptor string    `json:"soft_descriptor,omitempty"`
	ItemList       *ItemList `json:"item_list,omitempty"`
	NotifyURL      string    `json:"notify_url,omitempty"`
}

// NewTransaction creates a validated transaction.
func NewTransaction(amount Amount, description string) (*Transaction, error) {
	if err := description127.Validate("description", description); err != nil {
		return nil, err
	}
	return &Transaction{Amount: amount, Description: description}, nil
}

// SetCustom sets the pass-through custom field.
func (t *Transaction) SetCustom(custom string) error {
	if err := custom256.Validate("custom", custom); err != nil {
		return err
	}
	t.Custom = custom
	return nil
}

// SetInvoiceNumber sets the merchant invoice number.
func (t *Transaction) SetInvoiceNumber(number string) error {
	if err := invoiceNumber127.Validate("invoice_number", number); err != nil {
		return err
	}
	t.InvoiceNumber = number
	return nil
}

// SetSoftDescriptor sets the card statement descriptor.
func (t *Transaction) SetSoftDescriptor(descriptor string) error {
	if err := softDescriptor22.Validate("soft_descriptor", descriptor); err != nil {
		return err
	}
	t.SoftDescriptor = descriptor
	return nil
}

// MarshalJSON always emits an amount details object, as an empty placeholder
// when no breakdown was supplied. The upstream API requires the key to be
// present on transactions.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type transaction Transaction
	encoded := transaction(t)
	if encoded.Amount.Details == nil {
		encoded.Amount.Details = &AmountDetails{}
	}
	return json.Marshal(encoded)
}

// ItemList carries the items of a transaction and an optional shipping
// address.
type ItemList struct {
	Items           []Item   `json:"items"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
}

// MarshalJSON emits an empty array rather than omitting the required items
// key.
func (l ItemList) MarshalJSON() ([]byte, error) {
	type itemList ItemList
	encoded := itemList(l)
	if encoded.Items == nil {
		encoded.Items = []Item{}
	}
	return json.Marshal(encoded)
}

// Item is a single line item.
type Item struct {
	Name        string       `json:"name"`
	Quantity    int          `json:"quantity"`
	Price       string       `json:"price"`
	Currency    CurrencyCode `json:"currency"`
	SKU         string       `json:"sku,omitempty"`
	Description string       `json:"description,omitempty"`
}

// NewItem creates a validated line item.
func NewItem(name string, quantity int, currency CurrencyCode, price string) (*Item, error) {
	if err := validation.Combine(
		itemName127.Validate("name", name),
		validation.Between(1, 10000).Validate("quantity", quantity),
		amountValue.Validate("price", price),
	); err != nil {
		return nil, err
	}
	if !currency.Valid() {
		return nil, validation.NewFieldError("currency", "must be an accepted ISO-4217 currency")
	}
	return &Item{Name: name, Quantity: quantity, Price: price, Currency: currency}, nil
}

// SetSKU sets the stock keeping unit.
func (i *Item) SetSKU(sku string) error {
	if err := itemSKU127.Validate("sku", sku); err != nil {
		return err
	}
	i.SKU = sku
	return nil
}

// Sale is the completed-sale transaction attached to an executed payment.
type Sale struct {
	ID            string     `json:"id" validate:"required"`
	Amount        Amount     `json:"amount"`
	State         SaleState  `json:"state"`
	ParentPayment string     `json:"parent_payment,omitempty"`
	CreateTime    *Timestamp `json:"create_time,omitempty"`
	UpdateTime    *Timestamp `json:"update_time,omitempty"`
	Links         []Link     `json:"links,omitempty"`
}

// Refund is a refund of a sale.
type Refund struct {
	ID            string      `json:"id" validate:"required"`
	Amount        *Amount     `json:"amount,omitempty"`
	State         RefundState `json:"state"`
	SaleID        string      `json:"sale_id,omitempty"`
	ParentPayment string      `json:"parent_payment,omitempty"`
	Description   string      `json:"description,omitempty"`
	CreateTime    *Timestamp  `json:"create_time,omitempty"`
	Links         []Link      `json:"links,omitempty"`
}

// RefundRequest asks for a full refund when Amount is nil, otherwise a
// partial one.
type RefundRequest struct {
	Amount *Amount `json:"amount,omitempty"`
}

// PaymentExecution completes an approved payment.
type PaymentExecution struct {
	PayerID string `json:"payer_id"`
}

// PaymentList is a page of payments.
type PaymentList struct {
	Payments []Payment `json:"payments"`
	Count    int       `json:"count"`
	NextID   string    `json:"next_id,omitempty"`
}
