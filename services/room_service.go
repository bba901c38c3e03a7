package services

import (
	"fmt"

	"luxurystay-backend/models"
)

type RoomService struct {
	rooms RoomStore
}

func NewRoomService(rooms RoomStore) *RoomService {
	return &RoomService{rooms: rooms}
}

func (s *RoomService) Create(room models.Room) (models.Room, error) {
	if err := room.Validate(); err != nil {
		return models.Room{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	// New rooms always start bookable.
	room.IsAvailable = true
	if err := s.rooms.Insert(&room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) GetAll(f RoomFilter) ([]models.Room, int64, error) {
	return s.rooms.List(f)
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	return s.rooms.GetByID(id)
}

// Update applies a partial field map. Identity and timestamp columns are
// stripped; a direct admin edit of isAvailable is permitted.
func (s *RoomService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "createdAt")
	delete(fields, "updatedAt")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	if t, ok := fields["type"].(string); ok {
		probe := models.Room{Type: t}
		if err := probe.ValidateType(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if p, ok := fields["price"].(float64); ok && p < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	return s.rooms.Update(id, fields)
}

// Delete cascades: the room's reservations go first, then the room, in one
// transaction. Returns the number of reservations removed with it.
func (s *RoomService) Delete(id uint) (int64, error) {
	return s.rooms.DeleteCascade(id)
}
