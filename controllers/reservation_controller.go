package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxurystay-backend/middleware"
	"luxurystay-backend/models"
	"luxurystay-backend/services"
	"luxurystay-backend/utils"
)

type ReservationController struct {
	reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{reservations: reservations}
}

type createReservationPayload struct {
	RoomID          uint   `json:"roomId"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	SpecialRequests string `json:"specialRequests"`
	Status          string `json:"status"`
}

type statusPayload struct {
	Status string `json:"status"`
}

type bulkStatusPayload struct {
	IDs    []uint `json:"ids"`
	Status string `json:"status"`
}

type bulkDeletePayload struct {
	IDs []uint `json:"ids"`
}

// CreateReservation handles POST /api/reservations. Any signed-in user may
// book; only admins may create an already-confirmed reservation.
func (ctl *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "roomId is required")
		return
	}

	checkIn, err := parseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkIn date, expected YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOut date, expected YYYY-MM-DD")
		return
	}

	actor := middleware.CurrentActor(c)

	status := payload.Status
	if status != "" && status != models.ReservationStatusPendingPayment && !actor.IsAdmin() {
		utils.JSONError(c, http.StatusForbidden, "only admins may set the initial status")
		return
	}

	userID := actor.UserID
	input := services.CreateReservationInput{
		RoomID:          payload.RoomID,
		UserID:          &userID,
		GuestName:       payload.GuestName,
		GuestEmail:      payload.GuestEmail,
		GuestPhone:      payload.GuestPhone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  payload.NumberOfGuests,
		SpecialRequests: payload.SpecialRequests,
		Status:          status,
	}

	res, err := ctl.reservations.Create(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

// GetReservations handles GET /api/reservations (admin).
func (ctl *ReservationController) GetReservations(c *gin.Context) {
	page, limit := pageQuery(c)
	filter := services.ReservationFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	reservations, total, err := ctl.reservations.List(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, reservations, page, limit, total)
}

// GetMyReservations handles GET /api/reservations/mine.
func (ctl *ReservationController) GetMyReservations(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	reservations, err := ctl.reservations.ListForUser(actor.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

// GetReservation handles GET /api/reservations/:id. Owner or admin.
func (ctl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	res, err := ctl.reservations.Get(id, middleware.CurrentActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// PayReservation handles POST /api/reservations/:id/pay. Simulated payment:
// flips pending_payment to confirmed and stamps paidAt.
func (ctl *ReservationController) PayReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	res, err := ctl.reservations.Confirm(id, middleware.CurrentActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// CancelReservation handles POST /api/reservations/:id/cancel. Owner or
// admin; releases the room.
func (ctl *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	res, err := ctl.reservations.Cancel(id, middleware.CurrentActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// UpdateReservationStatus handles PATCH /api/reservations/:id/status (admin).
func (ctl *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	res, err := ctl.reservations.ChangeStatus(id, payload.Status, middleware.CurrentActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// BulkUpdateStatus handles POST /api/reservations/bulk/status (admin). The
// admin table's multi-select actions land here. Failures are reported per id
// without aborting the batch.
func (ctl *ReservationController) BulkUpdateStatus(c *gin.Context) {
	var payload bulkStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload.IDs) == 0 || payload.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "ids and status are required")
		return
	}

	actor := middleware.CurrentActor(c)
	updated := 0
	failed := map[uint]string{}
	for _, id := range payload.IDs {
		if _, err := ctl.reservations.ChangeStatus(id, payload.Status, actor); err != nil {
			failed[id] = err.Error()
			continue
		}
		updated++
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"updated": updated,
		"failed":  failed,
	})
}

// BulkDelete handles POST /api/reservations/bulk/delete (admin).
func (ctl *ReservationController) BulkDelete(c *gin.Context) {
	var payload bulkDeletePayload
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload.IDs) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "ids are required")
		return
	}

	actor := middleware.CurrentActor(c)
	deleted := 0
	failed := map[uint]string{}
	for _, id := range payload.IDs {
		if err := ctl.reservations.Delete(id, actor); err != nil {
			failed[id] = err.Error()
			continue
		}
		deleted++
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"deleted": deleted,
		"failed":  failed,
	})
}

// DeleteReservation handles DELETE /api/reservations/:id. Owner or admin;
// removes the reservation and releases the room.
func (ctl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.reservations.Delete(id, middleware.CurrentActor(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "reservation deleted"})
}
