package models

import "time"

// ReservationStatus represents all possible states of a table reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid reports whether s is one of the three allowed statuses. Transitions
// between valid statuses are deliberately unrestricted: staff may flip a
// cancelled reservation back to confirmed after a phone call.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID        string            `json:"id" bson:"id"`
	Name      string            `json:"name" bson:"name"`
	Email     string            `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string            `json:"phone" bson:"phone"`
	Date      string            `json:"date" bson:"date"`
	Time      string            `json:"time" bson:"time"`
	Guests    string            `json:"guests" bson:"guests"`
	Message   string            `json:"message,omitempty" bson:"message,omitempty"`
	Status    ReservationStatus `json:"status" bson:"status"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}
