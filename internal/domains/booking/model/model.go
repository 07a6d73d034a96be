package model

import (
	"sufra/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldFoodDetails = "food_details"
	FieldSessionID   = "session_id"
)

// Booking is one sponsored slot. The id is the deterministic slot key
// (YYYY-MM-DD, with an _iftar/_suhoor suffix on the dual day), so presence
// of a row means the slot is taken and there is no separate status column.
type Booking struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	FoodDetails string `db:"food_details"`
	SessionID   string `db:"session_id"`
	model.Metadata
}

// OwnedBy reports whether the given actor may modify this booking.
// Admin waives the session check entirely.
func (b *Booking) OwnedBy(sessionID string, isAdmin bool) bool {
	return isAdmin || b.SessionID == sessionID
}
