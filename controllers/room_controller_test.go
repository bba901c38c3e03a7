package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"luxurystay-backend/models"
	"luxurystay-backend/services"
)

// stubRoomStore is a minimal in-memory RoomStore for handler tests.
type stubRoomStore struct {
	rooms map[uint]models.Room
}

func newStubRoomStore(rooms ...models.Room) *stubRoomStore {
	s := &stubRoomStore{rooms: map[uint]models.Room{}}
	for _, r := range rooms {
		s.rooms[r.ID] = r
	}
	return s
}

func (s *stubRoomStore) Insert(room *models.Room) error {
	room.ID = uint(len(s.rooms) + 1)
	s.rooms[room.ID] = *room
	return nil
}

func (s *stubRoomStore) GetByID(id uint) (models.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return models.Room{}, services.ErrRoomNotFound
	}
	return room, nil
}

func (s *stubRoomStore) List(f services.RoomFilter) ([]models.Room, int64, error) {
	out := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (s *stubRoomStore) Update(id uint, fields map[string]interface{}) error {
	if _, ok := s.rooms[id]; !ok {
		return services.ErrRoomNotFound
	}
	return nil
}

func (s *stubRoomStore) SetAvailability(id uint, available bool) error {
	room, ok := s.rooms[id]
	if !ok {
		return services.ErrRoomNotFound
	}
	room.IsAvailable = available
	s.rooms[id] = room
	return nil
}

func (s *stubRoomStore) DeleteCascade(id uint) (int64, error) {
	if _, ok := s.rooms[id]; !ok {
		return 0, services.ErrRoomNotFound
	}
	delete(s.rooms, id)
	return 0, nil
}

func setupRoomRouter(store *stubRoomStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := NewRoomController(services.NewRoomService(store))

	r := gin.New()
	r.GET("/api/rooms", ctl.GetRooms)
	r.GET("/api/rooms/:id", ctl.GetRoom)
	r.POST("/api/rooms", ctl.CreateRoom)
	r.DELETE("/api/rooms/:id", ctl.DeleteRoom)
	return r
}

func TestGetRooms(t *testing.T) {
	store := newStubRoomStore(
		models.Room{ID: 1, RoomNumber: "101", Type: "Single", Price: 80, MaxGuests: 1, IsAvailable: true},
		models.Room{ID: 2, RoomNumber: "201", Type: "Suite", Price: 250, MaxGuests: 3, IsAvailable: false},
	)
	r := setupRoomRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
	assert.Contains(t, w.Body.String(), `"roomNumber":"101"`)
}

func TestGetRoom_NotFound(t *testing.T) {
	r := setupRoomRouter(newStubRoomStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRoom_BadID(t *testing.T) {
	r := setupRoomRouter(newStubRoomStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoom(t *testing.T) {
	store := newStubRoomStore()
	r := setupRoomRouter(store)

	body := `{"roomNumber":"305","type":"Double","price":120,"maxGuests":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"isAvailable":true`)
	assert.Len(t, store.rooms, 1)
}

func TestCreateRoom_InvalidType(t *testing.T) {
	r := setupRoomRouter(newStubRoomStore())

	body := `{"roomNumber":"305","type":"Penthouse","price":120,"maxGuests":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRoom_NotFound(t *testing.T) {
	r := setupRoomRouter(newStubRoomStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/rooms/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
