package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxurystay-backend/models"
	"luxurystay-backend/services"
	"luxurystay-backend/utils"
)

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// GetRooms handles GET /api/rooms. Open to everyone so the public site can
// render the catalog.
func (ctl *RoomController) GetRooms(c *gin.Context) {
	page, limit := pageQuery(c)
	filter := services.RoomFilter{
		Search:       c.Query("search"),
		Availability: c.Query("availability"),
		Page:         page,
		Limit:        limit,
	}

	rooms, total, err := ctl.rooms.GetAll(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, rooms, page, limit, total)
}

// GetRoom handles GET /api/rooms/:id.
func (ctl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctl.rooms.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms (admin).
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := ctl.rooms.Create(room)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// UpdateRoom handles PATCH /api/rooms/:id (admin). Partial update by field
// map; the service strips identity and timestamp columns.
func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := ctl.rooms.Update(id, fields); err != nil {
		writeServiceError(c, err)
		return
	}

	room, err := ctl.rooms.GetByID(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id (admin). Removes the room and
// every reservation made against it.
func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctl.rooms.Delete(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":             "room deleted",
		"reservationsRemoved": removed,
	})
}
