package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"luxurystay-backend/models"
)

func TestUserService_ChangeRole_InvalidatesSession(t *testing.T) {
	users := &MockUserStore{}
	sessions := &MockSessionCache{}
	service := NewUserService(users, sessions)

	ctx := context.Background()
	users.On("UpdateRole", uint(7), models.RoleAdmin).Return(nil).Once()
	sessions.On("Delete", ctx, uint(7)).Return(nil).Once()

	err := service.ChangeRole(ctx, 7, models.RoleAdmin)

	assert.NoError(t, err)
	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestUserService_ChangeRole_RejectsUnknownRole(t *testing.T) {
	users := &MockUserStore{}
	service := NewUserService(users, nil)

	err := service.ChangeRole(context.Background(), 7, "manager")

	assert.ErrorIs(t, err, ErrInvalidInput)
	users.AssertNotCalled(t, "UpdateRole")
}

func TestUserService_ChangeRole_NotFound(t *testing.T) {
	users := &MockUserStore{}
	sessions := &MockSessionCache{}
	service := NewUserService(users, sessions)

	users.On("UpdateRole", uint(404), models.RoleUser).Return(ErrUserNotFound).Once()

	err := service.ChangeRole(context.Background(), 404, models.RoleUser)

	assert.ErrorIs(t, err, ErrUserNotFound)
	sessions.AssertNotCalled(t, "Delete")
}

func TestUserService_Delete_InvalidatesSession(t *testing.T) {
	users := &MockUserStore{}
	sessions := &MockSessionCache{}
	service := NewUserService(users, sessions)

	ctx := context.Background()
	users.On("Delete", uint(7)).Return(nil).Once()
	sessions.On("Delete", ctx, uint(7)).Return(nil).Once()

	err := service.Delete(ctx, 7)

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestUserService_GetAll_PassesFilter(t *testing.T) {
	users := &MockUserStore{}
	service := NewUserService(users, nil)

	filter := UserFilter{Search: "jane", Page: 2, Limit: 10}
	users.On("List", filter).Return([]models.User{{ID: 7}}, int64(11), nil).Once()

	list, total, err := service.GetAll(filter)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(11), total)
}
