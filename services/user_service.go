package services

import (
	"context"
	"fmt"
	"log"

	"luxurystay-backend/models"
)

// UserService backs the admin "Manage Users" screen.
type UserService struct {
	users    UserStore
	sessions SessionCache
}

func NewUserService(users UserStore, sessions SessionCache) *UserService {
	return &UserService{users: users, sessions: sessions}
}

func (s *UserService) GetAll(f UserFilter) ([]models.User, int64, error) {
	return s.users.List(f)
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	return s.users.GetByID(id)
}

// ChangeRole updates the stored role and drops the user's cached session so
// the stale role cannot be served from the cache.
func (s *UserService) ChangeRole(ctx context.Context, id uint, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return fmt.Errorf("%w: invalid role %q", ErrInvalidInput, role)
	}
	if err := s.users.UpdateRole(id, role); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id uint) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		log.Printf("failed to invalidate session cache for user %d: %v", id, err)
	}
}
