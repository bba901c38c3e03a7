package models

import "errors"

var (
	ErrAlreadyConfirmed = errors.New("reservation already confirmed")
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
	ErrCancelledFinal   = errors.New("cannot confirm a cancelled reservation")
	ErrUnknownStatus    = errors.New("unknown reservation status")
)

// ReservationState models the allowed status transitions.
type ReservationState interface {
	Confirm(r *Reservation) error
	Cancel(r *Reservation) error
}

type PendingPaymentState struct{}

func (s *PendingPaymentState) Confirm(r *Reservation) error {
	r.Status = ReservationStatusConfirmed
	return nil
}

func (s *PendingPaymentState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(r *Reservation) error {
	return ErrAlreadyConfirmed
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

// CancelledState is terminal. Cancel stays a no-op so the status-update path
// is idempotent; Confirm is rejected.
type CancelledState struct{}

func (s *CancelledState) Confirm(r *Reservation) error {
	return ErrCancelledFinal
}

func (s *CancelledState) Cancel(r *Reservation) error {
	return nil
}

func GetReservationState(status string) (ReservationState, error) {
	switch status {
	case ReservationStatusPendingPayment:
		return &PendingPaymentState{}, nil
	case ReservationStatusConfirmed:
		return &ConfirmedState{}, nil
	case ReservationStatusCancelled:
		return &CancelledState{}, nil
	default:
		return nil, ErrUnknownStatus
	}
}
