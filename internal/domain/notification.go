package domain

import "time"

// NotificationType classifies a notification for display purposes.
type NotificationType string

const (
	NotifInfo    NotificationType = "info"
	NotifSuccess NotificationType = "success"
	NotifWarning NotificationType = "warning"
	NotifError   NotificationType = "error"
)

// DeliveryStatus records the outcome of an outbound email send.
type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	DeliveryPending DeliveryStatus = "pending"
)

// Notification is an append-only activity record. Delivery metadata is only
// present when the notification was backed by an outbound email.
type Notification struct {
	ID             string           `json:"id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	ArticleID      string           `json:"articleId,omitempty"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
	Recipients     []string         `json:"recipients,omitempty"`
	RecipientCount int              `json:"recipientCount,omitempty"`
	Subject        string           `json:"subject,omitempty"`
	HTML           string           `json:"html,omitempty"`
	SentAt         *time.Time       `json:"sentAt,omitempty"`
	Status         DeliveryStatus   `json:"status,omitempty"`
}
