package services

import (
	"time"

	"luxurystay-backend/models"
)

// List filters. Page is 1-based; Limit <= 0 disables paging.

type RoomFilter struct {
	Search       string // matches room number / type
	Availability string // "", "available" or "booked"
	Page         int
	Limit        int
}

type ReservationFilter struct {
	Status string
	Search string // matches guest name / email
	UserID *uint
	Page   int
	Limit  int
}

type UserFilter struct {
	Search string // matches name / email
	Page   int
	Limit  int
}

// RoomStore persists the room catalog. DeleteCascade removes the room's
// reservations together with the room in one transaction.
type RoomStore interface {
	Insert(room *models.Room) error
	GetByID(id uint) (models.Room, error)
	List(f RoomFilter) ([]models.Room, int64, error)
	Update(id uint, fields map[string]interface{}) error
	SetAvailability(id uint, available bool) error
	DeleteCascade(id uint) (int64, error)
}

// ReservationStore persists the ledger. Methods that touch the linked room
// (holdRoom / releaseRoom) perform both writes in one transaction so the
// availability flag cannot drift from the reservation record.
type ReservationStore interface {
	Insert(res *models.Reservation, holdRoom bool) error
	GetByID(id uint) (models.Reservation, error)
	List(f ReservationFilter) ([]models.Reservation, int64, error)
	SetStatus(id uint, status string, paidAt *time.Time, releaseRoom bool) error
	Delete(id uint, releaseRoom bool) error
	FindExpiredHolds(now time.Time) ([]models.Reservation, error)

	// ExpireHold cancels the reservation and releases its room only if it is
	// still in pending_payment. Reports false when a payment won the race
	// between the sweep's read and this write.
	ExpireHold(id uint) (bool, error)
}

type UserStore interface {
	Insert(u *models.User) error
	GetByID(id uint) (models.User, error)
	GetByEmail(email string) (models.User, error)
	List(f UserFilter) ([]models.User, int64, error)
	UpdateRole(id uint, role string) error
	Delete(id uint) error
}
