package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"luxurystay-backend/models"
)

func TestRoomService_Create_Success(t *testing.T) {
	rooms := &MockRoomStore{}
	service := NewRoomService(rooms)

	rooms.On("Insert", mock.AnythingOfType("*models.Room")).Return(nil).Once()

	created, err := service.Create(models.Room{
		RoomNumber: "305",
		Type:       "Double",
		Price:      120,
		MaxGuests:  2,
	})

	assert.NoError(t, err)
	assert.True(t, created.IsAvailable)
	rooms.AssertExpectations(t)
}

func TestRoomService_Create_ForcesAvailability(t *testing.T) {
	rooms := &MockRoomStore{}
	service := NewRoomService(rooms)

	rooms.On("Insert", mock.AnythingOfType("*models.Room")).Return(nil).Once()

	created, err := service.Create(models.Room{
		RoomNumber:  "306",
		Type:        "Single",
		Price:       80,
		MaxGuests:   1,
		IsAvailable: false,
	})

	assert.NoError(t, err)
	assert.True(t, created.IsAvailable)
}

func TestRoomService_Create_ValidationErrors(t *testing.T) {
	rooms := &MockRoomStore{}
	service := NewRoomService(rooms)

	testCases := []struct {
		name string
		room models.Room
	}{
		{"missing room number", models.Room{Type: "Single", Price: 80, MaxGuests: 1}},
		{"negative price", models.Room{RoomNumber: "101", Type: "Single", Price: -1, MaxGuests: 1}},
		{"zero max guests", models.Room{RoomNumber: "101", Type: "Single", Price: 80}},
		{"unknown type", models.Room{RoomNumber: "101", Type: "Penthouse", Price: 80, MaxGuests: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Create(tc.room)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	rooms.AssertNotCalled(t, "Insert")
}

func TestRoomService_Create_DuplicateNumber(t *testing.T) {
	rooms := &MockRoomStore{}
	service := NewRoomService(rooms)

	rooms.On("Insert", mock.AnythingOfType("*models.Room")).Return(ErrRoomNumberTaken).Once()

	_, err := service.Create(models.Room{
		RoomNumber: "101",
		Type:       "Single",
		Price:      80,
		MaxGuests:  1,
	})

	assert.ErrorIs(t, err, ErrRoomNumberTaken)
}

func TestRoomService_Update_StripsProtectedFields(t *testing.T) {
	rooms := &MockRoomStore{}
	service := NewRoomService(rooms)

	rooms.On("Update", uint(1), map[string]interface{}{"price": 150.0}).Return(nil).Once()

	err := service.Update(1, map[string]interface{}{
		"id":         99,
		"price":      150.0,
		"created_at": "2020-01-01",
	})

	assert.NoError(t, err)
	rooms.AssertExpectations(t)
}

func TestRoomService_Update_RejectsBadValues(t *testing.T) {
	rooms := &MockRoomStore{}
	service := NewRoomService(rooms)

	err := service.Update(1, map[string]interface{}{"type": "Penthouse"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = service.Update(1, map[string]interface{}{"price": -10.0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = service.Update(1, map[string]interface{}{"id": 5})
	assert.ErrorIs(t, err, ErrInvalidInput) // nothing left after stripping

	rooms.AssertNotCalled(t, "Update")
}

func TestRoomService_Delete_Cascades(t *testing.T) {
	rooms := &MockRoomStore{}
	service := NewRoomService(rooms)

	rooms.On("DeleteCascade", uint(3)).Return(int64(2), nil).Once()

	removed, err := service.Delete(3)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	rooms.AssertExpectations(t)
}

func TestRoomService_Delete_NotFound(t *testing.T) {
	rooms := &MockRoomStore{}
	service := NewRoomService(rooms)

	rooms.On("DeleteCascade", uint(404)).Return(int64(0), ErrRoomNotFound).Once()

	_, err := service.Delete(404)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}
