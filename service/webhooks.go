package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/paygateio/paypalsdk/client"
	"github.com/paygateio/paypalsdk/models"
)

// WebhooksService drives the v1 notifications endpoints.
type WebhooksService struct {
	Client client.Executor
}

// CreateWebhook registers a webhook endpoint.
func (s *WebhooksService) CreateWebhook(ctx context.Context, webhook *models.Webhook) (*models.Webhook, error) {
	var created models.Webhook
	if err := s.Client.Execute(ctx, http.MethodPost, "/v1/notifications/webhooks", nil, webhook, &created); err != nil {
		return nil, fmt.Errorf("error creating webhook: [%w]", err)
	}
	log.Debug("created webhook", log.Data{"webhook_id": created.ID})
	return &created, nil
}

// GetWebhook fetches a webhook by ID.
func (s *WebhooksService) GetWebhook(ctx context.Context, webhookID string) (*models.Webhook, error) {
	var webhook models.Webhook
	path := fmt.Sprintf("/v1/notifications/webhooks/%s", webhookID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &webhook); err != nil {
		return nil, fmt.Errorf("error getting webhook [%s]: [%w]", webhookID, err)
	}
	return &webhook, nil
}

// ListWebhooks fetches all registered webhooks.
func (s *WebhooksService) ListWebhooks(ctx context.Context) (*models.WebhookList, error) {
	var list models.WebhookList
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/notifications/webhooks", nil, nil, &list); err != nil {
		return nil, fmt.Errorf("error listing webhooks: [%w]", err)
	}
	return &list, nil
}

// UpdateWebhook applies a patch set to a webhook registration.
func (s *WebhooksService) UpdateWebhook(ctx context.Context, webhookID string, patches []models.Patch) (*models.Webhook, error) {
	var updated models.Webhook
	path := fmt.Sprintf("/v1/notifications/webhooks/%s", webhookID)
	if err := s.Client.Execute(ctx, http.MethodPatch, path, nil, patches, &updated); err != nil {
		return nil, fmt.Errorf("error updating webhook [%s]: [%w]", webhookID, err)
	}
	return &updated, nil
}

// DeleteWebhook removes a webhook registration.
func (s *WebhooksService) DeleteWebhook(ctx context.Context, webhookID string) error {
	path := fmt.Sprintf("/v1/notifications/webhooks/%s", webhookID)
	if err := s.Client.Execute(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("error deleting webhook [%s]: [%w]", webhookID, err)
	}
	log.Info("deleted webhook", log.Data{"webhook_id": webhookID})
	return nil
}

// ListEventTypes fetches the catalogue of subscribable event types.
func (s *WebhooksService) ListEventTypes(ctx context.Context) (*models.EventTypeList, error) {
	var list models.EventTypeList
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/notifications/webhooks-event-types", nil, nil, &list); err != nil {
		return nil, fmt.Errorf("error listing webhook event types: [%w]", err)
	}
	return &list, nil
}

// ListEvents fetches a page of delivered events.
func (s *WebhooksService) ListEvents(ctx context.Context, params client.ListParams) (*models.EventList, error) {
	query, err := params.Values()
	if err != nil {
		return nil, fmt.Errorf("error building event list query: [%w]", err)
	}
	var list models.EventList
	if err := s.Client.Execute(ctx, http.MethodGet, "/v1/notifications/webhooks-events", query, nil, &list); err != nil {
		return nil, fmt.Errorf("error listing webhook events: [%w]", err)
	}
	return &list, nil
}

// GetEvent fetches a delivered event by ID.
func (s *WebhooksService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	path := fmt.Sprintf("/v1/notifications/webhooks-events/%s", eventID)
	if err := s.Client.Execute(ctx, http.MethodGet, path, nil, nil, &event); err != nil {
		return nil, fmt.Errorf("error getting webhook event [%s]: [%w]", eventID, err)
	}
	if err := models.CheckRequired(event); err != nil {
		return nil, fmt.Errorf("event response missing required fields: [%w]", err)
	}
	return &event, nil
}

// VerifySignature asks the API to confirm a received event notification was
// signed by PayPal.
func (s *WebhooksService) VerifySignature(ctx context.Context, request *models.VerifyWebhookSignatureRequest) (*models.VerifyWebhookSignatureResponse, error) {
	var response models.VerifyWebhookSignatureResponse
	if err := s.Client.Execute(ctx, http.MethodPost, "/v1/notifications/verify-webhook-signature", nil, request, &response); err != nil {
		return nil, fmt.Errorf("error verifying webhook signature: [%w]", err)
	}
	if err := models.CheckRequired(response); err != nil {
		return nil, fmt.Errorf("verification response missing required fields: [%w]", err)
	}
	return &response, nil
}
