package memory

import (
	"context"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
)

// UserStore exposes the user collection.
type UserStore struct{ s *Store }

// Users returns the user collection view.
func (s *Store) Users() *UserStore { return &UserStore{s: s} }

func cloneUser(u models.User) models.User {
	u.Barangay = cloneString(u.Barangay)
	return u
}

// Get returns the user by id.
func (u *UserStore) Get(ctx context.Context, id int64) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	rec, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := cloneUser(rec)
	return &out, nil
}

// GetByUsername returns the first user with a matching username.
func (u *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, id := range u.s.userOrder {
		if rec := u.s.users[id]; rec.Username == username {
			out := cloneUser(rec)
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

// Create assigns an id and stores the user.
func (u *UserStore) Create(ctx context.Context, user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user.ID = u.s.allocateID()
	u.s.users[user.ID] = cloneUser(*user)
	u.s.userOrder = append(u.s.userOrder, user.ID)
	return nil
}
