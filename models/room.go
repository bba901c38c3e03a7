package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room types offered by the hotel.
var RoomTypes = []string{"Single", "Double", "Suite", "Deluxe", "Family"}

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Display label shown to guests; unique so the front desk can't register
	// the same physical room twice.
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Type        string         `json:"type" gorm:"type:varchar(20)"`
	Price       float64        `json:"price"`
	MaxGuests   int            `json:"maxGuests" gorm:"column:max_guests;default:1"`
	Amenities   datatypes.JSON `json:"amenities" gorm:"column:amenities"`
	Description string         `json:"description" gorm:"type:text"`

	// Single global bookable switch, not a per-date calendar. Flipped off when
	// a reservation is taken and back on when it is cancelled or removed.
	IsAvailable bool `json:"isAvailable" gorm:"column:is_available;default:true"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Room) Validate() error {
	if r.RoomNumber == "" {
		return fmt.Errorf("room number is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if r.MaxGuests <= 0 {
		return fmt.Errorf("maxGuests must be positive")
	}
	return r.ValidateType()
}

func (r *Room) ValidateType() error {
	for _, t := range RoomTypes {
		if r.Type == t {
			return nil
		}
	}
	return fmt.Errorf("invalid room type: %q", r.Type)
}
