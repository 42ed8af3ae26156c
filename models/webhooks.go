package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

var webhookURL2048 = validation.MaxLength(2048)

// EventType names a webhook event the API can deliver, together with the
// version of its payload schema.
type EventType struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Version     *Version `json:"version,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// Webhook is a registered webhook endpoint.
type Webhook struct {
	ID         string      `json:"id,omitempty"`
	URL        string      `json:"url"`
	EventTypes []EventType `json:"event_types"`
	Links      []Link      `json:"links,omitempty"`
}

// NewWebhook creates a validated webhook registration. At least one event
// type must be subscribed.
func NewWebhook(url string, eventTypes ...EventType) (*Webhook, error) {
	if err := validation.And(validation.NotEmpty(), webhookURL2048).Validate("url", url); err != nil {
		return nil, err
	}
	if len(eventTypes) == 0 {
		return nil, validation.NewFieldError("event_types", "must subscribe to at least one event type")
	}
	return &Webhook{URL: url, EventTypes: eventTypes}, nil
}

// MarshalJSON emits the required event_types key as an empty array rather
// than omitting it.
func (w Webhook) MarshalJSON() ([]byte, error) {
	type webhook Webhook
	encoded := webhook(w)
	if encoded.EventTypes == nil {
		encoded.EventTypes = []EventType{}
	}
	return json.Marshal(encoded)
}

// WebhookList is the full set of registered webhooks.
type WebhookList struct {
	Webhooks []Webhook `json:"webhooks"`
}

// EventTypeList is the catalogue of subscribable event types.
type EventTypeList struct {
	EventTypes []EventType `json:"event_types"`
}

// Event is a delivered webhook notification. The resource payload is kept
// raw; its shape depends on the event type.
type Event struct {
	ID           string          `json:"id" validate:"required"`
	EventType    string          `json:"event_type"`
	EventVersion *Version        `json:"event_version,omitempty"`
	ResourceType string          `json:"resource_type,omitempty"`
	Summary      string          `json:"summary,omitempty"`
	Resource     json.RawMessage `json:"resource,omitempty"`
	CreateTime   *Timestamp      `json:"create_time,omitempty"`
	Links        []Link          `json:"links,omitempty"`
}

// EventList is a page of delivered events.
type EventList struct {
	Events []Event `json:"events"`
	Count  int     `json:"count,omitempty"`
	Links  []Link  `json:"links,omitempty"`
}

// VerifyWebhookSignatureRequest asks the API to confirm a received event was
// signed by PayPal.
type VerifyWebhookSignatureRequest struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}

// VerifyWebhookSignatureResponse reports the verification outcome. An
// unrecognised status string fails the decode.
type VerifyWebhookSignatureResponse struct {
	VerificationStatus VerificationStatus `json:"verification_status" validate:"required"`
}
