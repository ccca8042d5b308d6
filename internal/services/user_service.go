// Package services – UserService
//
// UserService enforces the user/role business rules before anything touches
// the user repository: a user must carry at least one role, every role name
// is normalized to the "ROLE_" prefix, and every role's owning-user
// back-reference is set before the aggregate is persisted. Persisting a
// user replaces its role set wholesale.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/repo"
)

// RolePrefix is carried by every persisted role name.
const RolePrefix = "ROLE_"

// UserService manages API users and their roles.
type UserService struct {
	users repo.UserRepository
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// SaveUser validates and persists the user. A user without roles fails with
// ErrNoRoles before any database write. Role names missing the "ROLE_"
// prefix gain it; names already carrying it are left alone.
func (s *UserService) SaveUser(ctx context.Context, u *domain.User) error {
	if len(u.Roles) == 0 {
		return ErrNoRoles
	}
	for i := range u.Roles {
		role := &u.Roles[i]
		if !strings.HasPrefix(role.Name, RolePrefix) {
			role.Name = RolePrefix + role.Name
		}
		if role.Username == "" {
			role.Username = u.Username
		}
	}
	return s.users.Save(ctx, u)
}

// FindUserByUsername returns the user with roles or ErrUserNotFound. It is
// used by the role guard to authenticate API callers.
func (s *UserService) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
