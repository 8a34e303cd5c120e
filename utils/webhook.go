package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"crm/config"
)

// LeadEvent is the payload posted to the configured webhook endpoint.
type LeadEvent struct {
	Event       string `json:"event"` // "lead.created", "lead.status-changed"
	LeadID      string `json:"leadId"`
	WorkspaceID string `json:"workspaceId"`
	Status      string `json:"status,omitempty"`
	ActorID     string `json:"actorId"`
	Timestamp   string `json:"timestamp"`
}

// NotifyLeadEvent posts a lead event to the webhook URL, if one is
// configured. Fire-and-forget: delivery failures are logged, never surfaced
// to the request that triggered them.
func NotifyLeadEvent(event LeadEvent) {
	url := config.AppConfig.WebhookURL
	if url == "" {
		return
	}

	event.Timestamp = time.Now().UTC().Format(time.RFC3339)

	go func() {
		client := resty.New().
			SetTimeout(10 * time.Second).
			SetRetryCount(3).
			SetRetryWaitTime(2 * time.Second)

		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(event).
			Post(url)
		if err != nil {
			log.Printf("Error delivering webhook %s for lead %s: %v", event.Event, event.LeadID, err)
			return
		}
		if resp.IsError() {
			log.Printf("Webhook %s for lead %s rejected: %d", event.Event, event.LeadID, resp.StatusCode())
		}
	}()
}
