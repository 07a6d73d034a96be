package dto

import (
	bookingDto "sufra/internal/domains/booking/model/dto"
	"sufra/internal/domains/calendar/model"
	"sufra/shared/constant"
)

type SlotResponse struct {
	ID      string                      `json:"id"`
	Kind    string                      `json:"kind"`
	Booked  bool                        `json:"booked"`
	Booking *bookingDto.BookingResponse `json:"booking,omitempty"`
}

func (r *SlotResponse) FromModel(slot model.Slot) {
	r.ID = slot.ID
	r.Kind = string(slot.Kind)
	r.Booked = slot.Booking != nil

	if slot.Booking != nil {
		booking := bookingDto.BookingResponse{}
		booking.FromModel(*slot.Booking)
		r.Booking = &booking
	}
}

type DayResponse struct {
	Date               string         `json:"date"`
	DayNumber          int            `json:"day_number"`
	IsWeekend          bool           `json:"is_weekend"`
	ExpectedAttendance int            `json:"expected_attendance"`
	Slots              []SlotResponse `json:"slots"`
}

func (r *DayResponse) FromModel(day model.Day) {
	r.Date = day.Date.Format(constant.DateOnlyFormat)
	r.DayNumber = day.DayNumber
	r.IsWeekend = day.IsWeekend
	r.ExpectedAttendance = day.ExpectedAttendance
	r.Slots = make([]SlotResponse, 0, len(day.Slots))

	for _, slot := range day.Slots {
		slotRes := SlotResponse{}
		slotRes.FromModel(slot)
		r.Slots = append(r.Slots, slotRes)
	}
}

type CalendarResponse struct {
	StartDate   string        `json:"start_date"`
	TotalDays   int           `json:"total_days"`
	TotalSlots  int           `json:"total_slots"`
	BookedSlots int           `json:"booked_slots"`
	Days        []DayResponse `json:"days"`
}

func (r *CalendarResponse) FromModels(days []model.Day, startDate string, totalDays int) {
	r.StartDate = startDate
	r.TotalDays = totalDays
	r.TotalSlots = model.TotalSlots(totalDays)
	r.BookedSlots = model.CountBooked(days)
	r.Days = make([]DayResponse, 0, len(days))

	for _, day := range days {
		dayRes := DayResponse{}
		dayRes.FromModel(day)
		r.Days = append(r.Days, dayRes)
	}
}
