package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"luxurystay-backend/models"
)

type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) Insert(room *models.Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockRoomStore) GetByID(id uint) (models.Room, error) {
	args := m.Called(id)
	return args.Get(0).(models.Room), args.Error(1)
}

func (m *MockRoomStore) List(f RoomFilter) ([]models.Room, int64, error) {
	args := m.Called(f)
	return args.Get(0).([]models.Room), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomStore) Update(id uint, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockRoomStore) SetAvailability(id uint, available bool) error {
	args := m.Called(id, available)
	return args.Error(0)
}

func (m *MockRoomStore) DeleteCascade(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) Insert(res *models.Reservation, holdRoom bool) error {
	args := m.Called(res, holdRoom)
	return args.Error(0)
}

func (m *MockReservationStore) GetByID(id uint) (models.Reservation, error) {
	args := m.Called(id)
	return args.Get(0).(models.Reservation), args.Error(1)
}

func (m *MockReservationStore) List(f ReservationFilter) ([]models.Reservation, int64, error) {
	args := m.Called(f)
	return args.Get(0).([]models.Reservation), args.Get(1).(int64), args.Error(2)
}

func (m *MockReservationStore) SetStatus(id uint, status string, paidAt *time.Time, releaseRoom bool) error {
	args := m.Called(id, status, paidAt, releaseRoom)
	return args.Error(0)
}

func (m *MockReservationStore) Delete(id uint, releaseRoom bool) error {
	args := m.Called(id, releaseRoom)
	return args.Error(0)
}

func (m *MockReservationStore) ExpireHold(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationStore) FindExpiredHolds(now time.Time) ([]models.Reservation, error) {
	args := m.Called(now)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Insert(u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(id uint) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(email string) (models.User, error) {
	args := m.Called(email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserStore) List(f UserFilter) ([]models.User, int64, error) {
	args := m.Called(f)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserStore) UpdateRole(id uint, role string) error {
	args := m.Called(id, role)
	return args.Error(0)
}

func (m *MockUserStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockSessionCache struct {
	mock.Mock
}

func (m *MockSessionCache) Set(ctx context.Context, session CachedSession, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionCache) Get(ctx context.Context, userID uint) (*CachedSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CachedSession), args.Error(1)
}

func (m *MockSessionCache) Delete(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendReservationConfirmed(res models.Reservation, room models.Room) error {
	args := m.Called(res, room)
	return args.Error(0)
}
