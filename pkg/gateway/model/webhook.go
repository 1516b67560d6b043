package model

import "encoding/json"

type Provider string

const (
	ProviderPayPal  Provider = "paypal"
	ProviderStripe  Provider = "stripe"
	ProviderGeneric Provider = "generic"
)

type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusProcessed EventStatus = "processed"
	EventStatusFailed    EventStatus = "failed"
	EventStatusIgnored   EventStatus = "ignored"
)

type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusDelivering DeliveryStatus = "delivering"
	DeliveryStatusSuccess    DeliveryStatus = "success"
	DeliveryStatusFailed     DeliveryStatus = "failed"
	DeliveryStatusAbandoned  DeliveryStatus = "abandoned"
)

// WebhookEvent is one inbound provider notification. The pair
// (Provider, ProviderEventID) is unique; duplicate deliveries of the same
// provider event collapse onto the first row. Rows are never deleted.
type WebhookEvent struct {
	ID              string          `json:"id"`                       // Internal ID of the event.
	Provider        Provider        `json:"provider"`                 // Source provider of the event.
	ProviderEventID string          `json:"provider_event_id"`        // Provider's own idempotency key.
	EventType       string          `json:"event_type"`               // Provider event type string.
	Status          EventStatus     `json:"status"`                   // Processing status of the event.
	ReceivedAt      int64           `json:"received_at"`              // Unix Time (in second) when the event was received.
	ProcessedAt     int64           `json:"processed_at,omitempty"`   // Unix Time (in second) when the last processing pass finished.
	ErrorMessage    string          `json:"error_message,omitempty"`  // Sanitized handler failure message.
	ReplayCount     int             `json:"replay_count,omitempty"`   // Number of manual replay passes.
	Payload         json.RawMessage `json:"payload,omitempty"`        // Raw provider payload.
}

// WebhookConfig is a tenant's outbound subscription.
type WebhookConfig struct {
	ID         string   `json:"id"`               // Unique ID of the config.
	TenantID   string   `json:"tenant_id"`        // The tenant this config belongs to.
	Url        string   `json:"url"`              // The URL notifications are POSTed to.
	EventTypes []string `json:"event_types"`      // Subscribed event type patterns. A trailing '*' matches any suffix.
	Active     bool     `json:"is_active"`        // Inactive configs receive no deliveries.
	Secret     string   `json:"secret,omitempty"` // Secret used to sign outbound payloads. Exposed on create/rotate only.
	Deleted    bool     `json:"deleted,omitempty"`
	CreatedAt  int64    `json:"created_at"` // Unix Time (in second) when the config was created.
	CreatedBy  string   `json:"created_by"`
	UpdatedAt  int64    `json:"updated_at"` // Unix Time (in second) when the config was last updated.
	UpdatedBy  string   `json:"updated_by"`
}

// Subscribes reports whether the config subscribes to eventType.
// Patterns match exactly, or by prefix when they end with '*'.
func (c WebhookConfig) Subscribes(eventType string) bool {
	for _, pattern := range c.EventTypes {
		if pattern == eventType {
			return true
		}
		if n := len(pattern); n > 0 && pattern[n-1] == '*' {
			prefix := pattern[:n-1]
			if len(eventType) >= len(prefix) && eventType[:len(prefix)] == prefix {
				return true
			}
		}
	}
	return false
}

// WebhookDelivery is one outbound delivery attempt sequence for a
// (WebhookConfig, domain event) pair. AttemptCount only grows. NextRetryAt is
// zero once the delivery reaches a terminal state (success, dead-lettered
// failed, or abandoned).
type WebhookDelivery struct {
	ID             string          `json:"id"`
	ConfigID       string          `json:"webhook_config_id"`
	EventID        string          `json:"event_id"`
	EventType      string          `json:"event_type"`
	Status         DeliveryStatus  `json:"status"`
	ResponseStatus int             `json:"response_status,omitempty"` // Last HTTP status received from the endpoint, 0 if none.
	AttemptCount   int             `json:"attempt_count"`
	MaxAttempts    int             `json:"max_attempts"`
	NextRetryAt    int64           `json:"next_retry_at,omitempty"` // Unix Time (in second) of the next due attempt.
	DeadLettered   bool            `json:"dead_lettered,omitempty"` // Set when retries are exhausted or the failure is permanent.
	LastError      string          `json:"last_error,omitempty"`
	Payload        json.RawMessage `json:"payload,omitempty"` // Domain event data delivered to the endpoint.
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
}

// Terminal reports whether the delivery will receive no further automatic
// attempts.
func (d WebhookDelivery) Terminal() bool {
	switch d.Status {
	case DeliveryStatusSuccess, DeliveryStatusAbandoned:
		return true
	case DeliveryStatusFailed:
		return d.DeadLettered
	default:
		return false
	}
}

// DeliveryPayload is the outbound notification body. Receivers are expected
// to dedup by EventID; deliveries are at-least-once.
type DeliveryPayload struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}
