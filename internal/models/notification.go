package models

import "time"

// Notification records an intent to notify a recipient group. Creating one
// does not dispatch anything to email/SMS/push gateways.
type Notification struct {
	ID             int64  `db:"id" json:"id"`
	Subject        string `db:"subject" json:"subject"`
	Message        string `db:"message" json:"message"`
	Type           string `db:"type" json:"type"`
	RecipientGroup string `db:"recipient_group" json:"recipientGroup"`
	// Channels is a serialized JSON array of channel names (email, sms, push).
	Channels string    `db:"channels" json:"channels"`
	SentAt   time.Time `db:"sent_at" json:"sentAt"`
}
