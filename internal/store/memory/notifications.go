package memory

import (
	"context"

	"github.com/menro-ph/waste-api/internal/models"
)

// NotificationStore exposes the notification collection. Notifications are
// append-only: no update or single get exists.
type NotificationStore struct{ s *Store }

// Notifications returns the notification collection view.
func (s *Store) Notifications() *NotificationStore { return &NotificationStore{s: s} }

// List returns all notifications in insertion order.
func (n *NotificationStore) List(ctx context.Context) ([]models.Notification, error) {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	out := make([]models.Notification, 0, len(n.s.notifOrder))
	for _, id := range n.s.notifOrder {
		out = append(out, n.s.notifications[id])
	}
	return out, nil
}

// Create assigns an id, stamps the sent time and stores the record.
func (n *NotificationStore) Create(ctx context.Context, notification *models.Notification) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	notification.ID = n.s.allocateID()
	if notification.SentAt.IsZero() {
		notification.SentAt = n.s.now()
	}
	n.s.notifications[notification.ID] = *notification
	n.s.notifOrder = append(n.s.notifOrder, notification.ID)
	return nil
}
