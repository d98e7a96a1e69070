package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/menro-ph/waste-api/internal/models"
)

const notificationColumns = "id, subject, message, type, recipient_group, channels, sent_at"

// NotificationRepository handles persistence for notification records.
// Notifications are append-only: no update or single get exists.
type NotificationRepository struct {
	db *sqlx.DB
}

// NewNotificationRepository instantiates a notification repository.
func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// List returns all notifications in insertion order.
func (r *NotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	query := fmt.Sprintf("SELECT %s FROM notifications ORDER BY id", notificationColumns)
	notifications := make([]models.Notification, 0)
	if err := r.db.SelectContext(ctx, &notifications, query); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// Create inserts a new notification drawing its id from the shared sequence.
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.SentAt.IsZero() {
		notification.SentAt = time.Now().UTC()
	}
	const query = `INSERT INTO notifications (id, subject, message, type, recipient_group, channels, sent_at)
		VALUES (nextval('entity_ids'), $1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		notification.Subject, notification.Message, notification.Type,
		notification.RecipientGroup, notification.Channels, notification.SentAt,
	).Scan(&notification.ID); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}
