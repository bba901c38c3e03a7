package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"luxurystay-backend/models"
)

// ReservationMailer sends guest-facing mail. Failures are logged, never
// surfaced: mail must not block the booking flow.
type ReservationMailer interface {
	SendReservationConfirmed(res models.Reservation, room models.Room) error
}

// Actor identifies who is performing an operation.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

type CreateReservationInput struct {
	RoomID          uint
	UserID          *uint
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         time.Time
	CheckOut        time.Time
	NumberOfGuests  int
	SpecialRequests string

	// Only the admin path may pass "confirmed"; guests always start in
	// pending_payment and go through the payment step.
	Status string
}

// ReservationService keeps Room.IsAvailable consistent with the existence of
// an active reservation for that room.
type ReservationService struct {
	rooms        RoomStore
	reservations ReservationStore
	holdTTL      time.Duration
	mailer       ReservationMailer
}

type ReservationServiceOption func(*ReservationService)

func WithMailer(m ReservationMailer) ReservationServiceOption {
	return func(s *ReservationService) {
		s.mailer = m
	}
}

func NewReservationService(rooms RoomStore, reservations ReservationStore, holdTTL time.Duration, opts ...ReservationServiceOption) *ReservationService {
	s := &ReservationService{
		rooms:        rooms,
		reservations: reservations,
		holdTTL:      holdTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create books a room. The reservation row and the availability flip are one
// transaction inside the store; a pending_payment reservation carries a hold
// deadline so an abandoned booking does not block the room forever.
func (s *ReservationService) Create(input CreateReservationInput) (models.Reservation, error) {
	if strings.TrimSpace(input.GuestName) == "" {
		return models.Reservation{}, fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.GuestEmail) == "" {
		return models.Reservation{}, fmt.Errorf("%w: guest email is required", ErrInvalidInput)
	}
	if !input.CheckOut.After(input.CheckIn) {
		return models.Reservation{}, fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidInput)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if input.CheckIn.Before(today) {
		return models.Reservation{}, fmt.Errorf("%w: check-in date cannot be in the past", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = models.ReservationStatusPendingPayment
	}
	if status != models.ReservationStatusPendingPayment && status != models.ReservationStatusConfirmed {
		return models.Reservation{}, fmt.Errorf("%w: invalid initial status %q", ErrInvalidInput, status)
	}

	room, err := s.rooms.GetByID(input.RoomID)
	if err != nil {
		return models.Reservation{}, err
	}
	if !room.IsAvailable {
		return models.Reservation{}, ErrRoomNotAvailable
	}

	guests := input.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}
	if guests > room.MaxGuests {
		return models.Reservation{}, fmt.Errorf("%w: room %s takes at most %d guests", ErrInvalidInput, room.RoomNumber, room.MaxGuests)
	}

	roomID := room.ID
	res := models.Reservation{
		RoomID:          &roomID,
		UserID:          input.UserID,
		GuestName:       strings.TrimSpace(input.GuestName),
		GuestEmail:      strings.TrimSpace(input.GuestEmail),
		GuestPhone:      strings.TrimSpace(input.GuestPhone),
		CheckIn:         input.CheckIn,
		CheckOut:        input.CheckOut,
		NumberOfGuests:  guests,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Status:          status,
	}
	res.TotalPrice = float64(res.Nights()) * room.Price

	if status == models.ReservationStatusPendingPayment && s.holdTTL > 0 {
		deadline := time.Now().Add(s.holdTTL)
		res.HoldExpiresAt = &deadline
	}
	if status == models.ReservationStatusConfirmed {
		paidAt := time.Now()
		res.PaidAt = &paidAt
	}

	if err := s.reservations.Insert(&res, true); err != nil {
		return models.Reservation{}, err
	}

	if status == models.ReservationStatusConfirmed {
		s.notifyConfirmed(res, room)
	}
	return res, nil
}

func (s *ReservationService) Get(id uint, actor Actor) (models.Reservation, error) {
	res, err := s.reservations.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := s.authorize(res, actor); err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

func (s *ReservationService) List(f ReservationFilter) ([]models.Reservation, int64, error) {
	return s.reservations.List(f)
}

func (s *ReservationService) ListForUser(userID uint) ([]models.Reservation, error) {
	reservations, _, err := s.reservations.List(ReservationFilter{UserID: &userID})
	return reservations, err
}

// Confirm completes the simulated payment: pending_payment -> confirmed,
// stamps paidAt and clears the hold. The room stays held.
func (s *ReservationService) Confirm(id uint, actor Actor) (models.Reservation, error) {
	res, err := s.reservations.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := s.authorize(res, actor); err != nil {
		return models.Reservation{}, err
	}

	state, err := models.GetReservationState(res.Status)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := state.Confirm(&res); err != nil {
		return models.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := time.Now()
	if err := s.reservations.SetStatus(id, models.ReservationStatusConfirmed, &now, false); err != nil {
		return models.Reservation{}, err
	}
	res.PaidAt = &now
	res.HoldExpiresAt = nil

	if res.RoomID != nil {
		if room, rErr := s.rooms.GetByID(*res.RoomID); rErr == nil {
			s.notifyConfirmed(res, room)
		}
	}
	return res, nil
}

// Cancel releases the room unconditionally: the model has one active
// reservation per room at most, so freeing is always correct here.
// Cancelling an already cancelled reservation is a no-op.
func (s *ReservationService) Cancel(id uint, actor Actor) (models.Reservation, error) {
	res, err := s.reservations.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := s.authorize(res, actor); err != nil {
		return models.Reservation{}, err
	}
	if res.Status == models.ReservationStatusCancelled {
		return res, nil
	}

	state, err := models.GetReservationState(res.Status)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := state.Cancel(&res); err != nil {
		return models.Reservation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.reservations.SetStatus(id, models.ReservationStatusCancelled, nil, res.RoomID != nil); err != nil {
		return models.Reservation{}, err
	}
	res.HoldExpiresAt = nil
	return res, nil
}

// ChangeStatus is the admin bulk/status endpoint entry point.
func (s *ReservationService) ChangeStatus(id uint, status string, actor Actor) (models.Reservation, error) {
	switch status {
	case models.ReservationStatusConfirmed:
		return s.Confirm(id, actor)
	case models.ReservationStatusCancelled:
		return s.Cancel(id, actor)
	default:
		return models.Reservation{}, fmt.Errorf("%w: cannot transition to %q", ErrInvalidInput, status)
	}
}

// Delete soft-deletes the reservation and frees the room when one is still
// linked. The row drops out of every read path, so a second delete fails
// with not-found.
func (s *ReservationService) Delete(id uint, actor Actor) error {
	res, err := s.reservations.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.authorize(res, actor); err != nil {
		return err
	}
	return s.reservations.Delete(id, res.RoomID != nil)
}

// ExpireHolds cancels pending_payment reservations whose payment deadline has
// passed and releases their rooms. Run periodically by the cron job. The
// per-row cancel is guarded on the status, so a payment that lands after the
// read here keeps its reservation.
func (s *ReservationService) ExpireHolds(now time.Time) (int, error) {
	expired, err := s.reservations.FindExpiredHolds(now)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, res := range expired {
		ok, err := s.reservations.ExpireHold(res.ID)
		if err != nil {
			log.Printf("expire hold: reservation %d: %v", res.ID, err)
			continue
		}
		if ok {
			released++
		}
	}
	return released, nil
}

func (s *ReservationService) authorize(res models.Reservation, actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	if res.UserID != nil && *res.UserID == actor.UserID {
		return nil
	}
	return ErrForbidden
}

func (s *ReservationService) notifyConfirmed(res models.Reservation, room models.Room) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.SendReservationConfirmed(res, room); err != nil {
		log.Printf("failed to send confirmation email for reservation %d: %v", res.ID, err)
	}
}
