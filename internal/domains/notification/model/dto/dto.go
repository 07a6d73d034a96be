package dto

import "time"

// EmailRequest is the relay surface: subject, plain-text body and optional
// recipient override. Callers that omit "to" get the configured fallback.
type EmailRequest struct {
	Subject string   `json:"subject" validate:"required,max=200"`
	Body    string   `json:"body"    validate:"required"`
	To      []string `json:"to"      validate:"omitempty,dive,email"`
}

// BookingEvent is the side-channel record published for every successful
// mutation. Cancellations carry the pre-deletion snapshot since the row is
// gone by the time anyone reads the event.
type BookingEvent struct {
	Action      string    `json:"action"`
	SlotID      string    `json:"slot_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	FoodDetails string    `json:"food_details"`
	SessionID   string    `json:"session_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

const (
	ActionCreated   = "NEW"
	ActionUpdated   = "UPDATED"
	ActionCancelled = "CANCELLED"
)
