package user

import (
	"context"
	"sync"
)

// Repository is the persistence boundary for users.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Insert(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int) (User, error)
	DeleteByID(ctx context.Context, id int) error
}

// InMemoryRepository keeps users in insertion (and therefore id) order.
type InMemoryRepository struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

var _ Repository = (*InMemoryRepository)(nil)

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users:  make([]User, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, user := range seed {
		repo.users = append(repo.users, user)
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

// Insert always assigns a fresh id; any id on user is ignored.
func (r *InMemoryRepository) Insert(ctx context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++

	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryRepository) DeleteByID(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

// Ping lets the in-memory repository stand in for a database in health checks.
func (r *InMemoryRepository) Ping(ctx context.Context) error {
	return nil
}
