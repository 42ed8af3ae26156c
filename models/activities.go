package models

// Activity is one entry in the account activity feed. Every field is
// server-assigned.
type Activity struct {
	ID            string       `json:"id" validate:"required"`
	TimeCreated   *Timestamp   `json:"time_created,omitempty"`
	Type          string       `json:"activity_type,omitempty"`
	Subtype       string       `json:"sub_type,omitempty"`
	Status        string       `json:"status,omitempty"`
	Counterparty  *PayerInfo   `json:"counterparty,omitempty"`
	Gross         *Money       `json:"gross,omitempty"`
	Fee           *Money       `json:"fee,omitempty"`
	Net           *Money       `json:"net,omitempty"`
	PartnerFee    *Money       `json:"partner_fee,omitempty"`
	ExtensionData KeyValueList `json:"extensions,omitempty"`
	Links         []Link       `json:"links,omitempty"`
}

// ActivityList is a page of account activities.
type ActivityList struct {
	Items []Activity `json:"items"`
	Links []Link     `json:"links,omitempty"`
}
