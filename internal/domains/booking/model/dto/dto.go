package dto

import (
	"strings"

	"sufra/internal/domains/booking/model"
	"sufra/shared"
	"sufra/shared/constant"
	gDto "sufra/shared/dto"
	gModel "sufra/shared/model"
	"sufra/shared/phone"
	"sufra/shared/timezone"
)

// ConfirmBookingRequest claims or updates a slot. The slot is addressed by
// date and kind; the deterministic row id is computed server-side.
type ConfirmBookingRequest struct {
	Date          string `json:"date"           validate:"required,datetime=2006-01-02"`
	Kind          string `json:"kind"           validate:"omitempty,oneof=iftar suhoor"`
	Name          string `json:"name"           validate:"required,max=100"`
	Phone         string `json:"phone"          validate:"required,max=20"`
	FoodDetails   string `json:"food_details"   validate:"omitempty,max=500"`
	TermsAccepted bool   `json:"terms_accepted" validate:"required"`
}

// ToModel normalizes the request into a row for the given slot id. Blank
// food details become the placeholder and the phone number is stored in its
// grouped display form.
func (c *ConfirmBookingRequest) ToModel(slotID, sessionID string) model.Booking {
	foodDetails := strings.TrimSpace(c.FoodDetails)
	if foodDetails == "" {
		foodDetails = constant.FoodDetailsPlaceholder
	}

	return model.Booking{
		ID:          slotID,
		Name:        strings.TrimSpace(c.Name),
		Phone:       phone.Format(c.Phone),
		FoodDetails: foodDetails,
		SessionID:   sessionID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  sessionID,
			ModifiedBy: sessionID,
		},
	}
}

type BookingResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	FoodDetails string `json:"food_details"`
	SessionID   string `json:"session_id"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = phone.Format(model.Phone)
	r.FoodDetails = model.FoodDetails
	r.SessionID = model.SessionID
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
