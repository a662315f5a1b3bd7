package ledger

import "time"

type NotificationType string

const (
	NotificationNewTransaction = NotificationType("new_transaction")
	NotificationInfo           = NotificationType("info")
)

type Notification struct {
	ID          string           `json:"id"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	Transaction *Transaction     `json:"transaction,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
	Read        bool             `json:"read"`
}
