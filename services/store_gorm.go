package services

import (
	"errors"
	"time"

	"luxurystay-backend/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// GORM-backed stores. Constructors take the shared *gorm.DB from config.

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func paginate(db *gorm.DB, page, limit int) *gorm.DB {
	if limit <= 0 {
		return db
	}
	if page < 1 {
		page = 1
	}
	return db.Offset((page - 1) * limit).Limit(limit)
}

// ---------------- Rooms ----------------

type GormRoomStore struct {
	DB *gorm.DB
}

func NewGormRoomStore(db *gorm.DB) *GormRoomStore {
	return &GormRoomStore{DB: db}
}

func (s *GormRoomStore) Insert(room *models.Room) error {
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrRoomNumberTaken
		}
		return err
	}
	return nil
}

func (s *GormRoomStore) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, err
	}
	return room, nil
}

func (s *GormRoomStore) List(f RoomFilter) ([]models.Room, int64, error) {
	query := s.DB.Model(&models.Room{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("room_number LIKE ? OR type LIKE ?", like, like)
	}
	switch f.Availability {
	case "available":
		query = query.Where("is_available = ?", true)
	case "booked":
		query = query.Where("is_available = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []models.Room
	if err := paginate(query, f.Page, f.Limit).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (s *GormRoomStore) Update(id uint, fields map[string]interface{}) error {
	result := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return ErrRoomNumberTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		s.DB.Model(&models.Room{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return ErrRoomNotFound
		}
	}
	return nil
}

func (s *GormRoomStore) SetAvailability(id uint, available bool) error {
	result := s.DB.Model(&models.Room{}).Where("id = ?", id).Update("is_available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// DeleteCascade removes every reservation referencing the room, then the room
// itself, in one transaction. Returns how many reservations were removed.
func (s *GormRoomStore) DeleteCascade(id uint) (int64, error) {
	var removed int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("room_id = ?", id).Delete(&models.Reservation{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		result := tx.Delete(&models.Room{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRoomNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// ---------------- Reservations ----------------

type GormReservationStore struct {
	DB *gorm.DB
}

func NewGormReservationStore(db *gorm.DB) *GormReservationStore {
	return &GormReservationStore{DB: db}
}

func (s *GormReservationStore) Insert(res *models.Reservation, holdRoom bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return err
		}
		if holdRoom && res.RoomID != nil {
			result := tx.Model(&models.Room{}).Where("id = ?", *res.RoomID).Update("is_available", false)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrRoomNotFound
			}
		}
		return nil
	})
}

func (s *GormReservationStore) GetByID(id uint) (models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.Preload("Room").First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrReservationNotFound
		}
		return res, err
	}
	return res, nil
}

func (s *GormReservationStore) List(f ReservationFilter) ([]models.Reservation, int64, error) {
	query := s.DB.Model(&models.Reservation{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.UserID != nil {
		query = query.Where("user_id = ?", *f.UserID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("guest_name LIKE ? OR guest_email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []models.Reservation
	if err := paginate(query, f.Page, f.Limit).Preload("Room").Order("created_at DESC").Find(&reservations).Error; err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

func (s *GormReservationStore) SetStatus(id uint, status string, paidAt *time.Time, releaseRoom bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		fields := map[string]interface{}{
			"status":          status,
			"hold_expires_at": nil,
		}
		if paidAt != nil {
			fields["paid_at"] = paidAt
		}
		if err := tx.Model(&res).Updates(fields).Error; err != nil {
			return err
		}

		if releaseRoom && res.RoomID != nil {
			if err := tx.Model(&models.Room{}).Where("id = ?", *res.RoomID).Update("is_available", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormReservationStore) Delete(id uint, releaseRoom bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := tx.Delete(&res).Error; err != nil {
			return err
		}

		if releaseRoom && res.RoomID != nil {
			if err := tx.Model(&models.Room{}).Where("id = ?", *res.RoomID).Update("is_available", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ExpireHold is the sweep's cancel. The UPDATE carries a status predicate so
// a reservation confirmed after the sweep's read is left alone; the room is
// released only when the guarded UPDATE actually hit the row.
func (s *GormReservationStore) ExpireHold(id uint) (bool, error) {
	expired := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		result := tx.Model(&models.Reservation{}).
			Where("id = ? AND status = ?", id, models.ReservationStatusPendingPayment).
			Updates(map[string]interface{}{
				"status":          models.ReservationStatusCancelled,
				"hold_expires_at": nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		expired = true

		if res.RoomID != nil {
			return tx.Model(&models.Room{}).Where("id = ?", *res.RoomID).Update("is_available", true).Error
		}
		return nil
	})
	return expired, err
}

func (s *GormReservationStore) FindExpiredHolds(now time.Time) ([]models.Reservation, error) {
	var expired []models.Reservation
	err := s.DB.
		Where("status = ? AND hold_expires_at IS NOT NULL AND hold_expires_at < ?", models.ReservationStatusPendingPayment, now).
		Find(&expired).Error
	return expired, err
}

// ---------------- Users ----------------

type GormUserStore struct {
	DB *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) Insert(u *models.User) error {
	if err := s.DB.Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *GormUserStore) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

func (s *GormUserStore) GetByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

func (s *GormUserStore) List(f UserFilter) ([]models.User, int64, error) {
	query := s.DB.Model(&models.User{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := paginate(query, f.Page, f.Limit).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *GormUserStore) UpdateRole(id uint, role string) error {
	result := s.DB.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *GormUserStore) Delete(id uint) error {
	result := s.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
