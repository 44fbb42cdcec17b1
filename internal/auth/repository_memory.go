package auth

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.users[user.Username]; taken {
		return ErrUsernameTaken
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *InMemoryUserRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.users[username]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (r *InMemoryUserRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type InMemoryLoginRepository struct {
	mu     sync.Mutex
	logins []Login
}

func NewInMemoryLoginRepository() *InMemoryLoginRepository {
	return &InMemoryLoginRepository{}
}

func (r *InMemoryLoginRepository) Record(_ context.Context, login *Login) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if login.ID == "" {
		login.ID = uuid.New().String()
	}
	r.logins = append(r.logins, *login)
	return nil
}

// Logins returns a copy of the recorded history.
func (r *InMemoryLoginRepository) Logins() []Login {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Login(nil), r.logins...)
}
