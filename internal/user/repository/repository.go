package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/AlibekovAA/user-registry/internal/user/domain"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

type Repository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Count(ctx context.Context) int
}

// MemoryRepository keeps users in process memory, keyed by username, and
// remembers registration order for List.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[string]domain.User),
	}
}

// Create inserts user unless its username is taken. The lookup and the
// insert share one critical section.
func (r *MemoryRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return domain.User{}, ErrUsernameAlreadyExists
	}

	r.users[user.Username] = user
	r.order = append(r.order, user.Username)

	return user, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.order))
	for _, username := range r.order {
		users = append(users, r.users[username])
	}

	return users, nil
}

func (r *MemoryRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	r.mu.RLock()
	user, ok := r.users[username]
	r.mu.RUnlock()

	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *MemoryRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
