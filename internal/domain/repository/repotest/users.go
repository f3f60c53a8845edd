// Package repotest implementaciones en memoria de los puertos de repositorio para tests.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/repository"
)

var _ repository.UserRepository = (*Users)(nil)

// Users repositorio de usuarios en memoria. Err, si no es nil, lo devuelven todos los métodos.
type Users struct {
	mu   sync.Mutex
	byID map[string]*entity.User
	Err  error
}

// NewUsers crea el repositorio con los usuarios dados.
func NewUsers(users ...*entity.User) *Users {
	r := &Users{byID: make(map[string]*entity.User)}
	for _, u := range users {
		r.byID[u.ID] = clone(u)
	}
	return r
}

func (r *Users) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.byID[user.ID] = clone(user)
	return nil
}

func (r *Users) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if u, ok := r.byID[id]; ok {
		return clone(u), nil
	}
	return nil, nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.byID {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *Users) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// List más nuevos primero, como el repositorio de PostgreSQL.
func (r *Users) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, clone(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// NewUser arma un usuario con la contraseña hasheada (costo mínimo de bcrypt).
func NewUser(id, email, password, role string, createdAt time.Time) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func clone(u *entity.User) *entity.User {
	c := *u
	return &c
}
