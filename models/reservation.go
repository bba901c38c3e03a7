package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Reservation status values
const (
	ReservationStatusPendingPayment = "pending_payment"
	ReservationStatusConfirmed      = "confirmed"
	ReservationStatusCancelled      = "cancelled"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// RoomID is kept nullable: deleting a reservation's room leaves an orphan
	// rather than failing the read paths.
	RoomID *uint `gorm:"column:room_id;index" json:"roomId,omitempty"`
	UserID *uint `gorm:"column:user_id;index" json:"userId,omitempty"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	CheckIn         time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut        time.Time `gorm:"column:check_out" json:"checkOut"`
	NumberOfGuests  int       `gorm:"column:number_of_guests;default:1" json:"numberOfGuests"`
	SpecialRequests string    `gorm:"type:text" json:"specialRequests,omitempty"`

	// Fixed at creation as nights * room price; never recomputed afterwards,
	// even if the room rate changes.
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`

	Status string `gorm:"size:32;index" json:"status"`

	// Payment deadline for pending_payment reservations. The hold sweep
	// cancels the reservation and releases the room once this passes.
	HoldExpiresAt *time.Time `gorm:"column:hold_expires_at;index" json:"holdExpiresAt,omitempty"`
	PaidAt        *time.Time `gorm:"column:paid_at" json:"paidAt,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// Nights rounds partial days up, matching how the stay total is quoted.
func (r *Reservation) Nights() int {
	if !r.CheckOut.After(r.CheckIn) {
		return 0
	}
	return int(math.Ceil(r.CheckOut.Sub(r.CheckIn).Hours() / 24))
}
