package model

import (
	"time"

	bookingModel "sufra/internal/domains/booking/model"
	"sufra/shared/constant"
)

const EntityName = "calendar"

// SlotKind distinguishes the two meals on the dual day. Every other day
// has a single iftar slot whose id carries no kind suffix.
type SlotKind string

const (
	KindIftar  SlotKind = "iftar"
	KindSuhoor SlotKind = "suhoor"
)

// Slot is one bookable unit. Booking is nil while the slot is free.
type Slot struct {
	ID      string
	Kind    SlotKind
	Booking *bookingModel.Booking
}

// Day is one calendar day with its derived attributes and slot bindings.
type Day struct {
	Date               time.Time
	DayNumber          int
	IsWeekend          bool
	ExpectedAttendance int
	Slots              []Slot
}

// Attendance holds the expected head counts per day class.
type Attendance struct {
	Weekday int
	Weekend int
	DualDay int
}

// SlotID computes the deterministic booking key for a slot. It is never
// stored on its own: recomputing it is the join between a day and its row.
func SlotID(date time.Time, kind SlotKind, isDualDay bool) string {
	id := date.Format(constant.DateOnlyFormat)
	if isDualDay {
		return id + "_" + string(kind)
	}

	return id
}

// BuildDays derives the full day list from the configured range and the
// hydrated booking map. It is a pure function: callers re-run it from raw
// rows after every mutation instead of patching previous output.
func BuildDays(start time.Time, totalDays, dualDay int, attendance Attendance, bookings map[string]bookingModel.Booking) []Day {
	days := make([]Day, 0, totalDays)

	for i := range totalDays {
		date := start.AddDate(0, 0, i)
		weekday := date.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday
		dayNumber := i + 1

		day := Day{
			Date:      date,
			DayNumber: dayNumber,
			IsWeekend: isWeekend,
		}

		if dayNumber == dualDay {
			day.ExpectedAttendance = attendance.DualDay
			day.Slots = []Slot{
				newSlot(date, KindIftar, true, bookings),
				newSlot(date, KindSuhoor, true, bookings),
			}
		} else {
			if isWeekend {
				day.ExpectedAttendance = attendance.Weekend
			} else {
				day.ExpectedAttendance = attendance.Weekday
			}

			day.Slots = []Slot{newSlot(date, KindIftar, false, bookings)}
		}

		days = append(days, day)
	}

	return days
}

// CountBooked totals the occupied slots across the day list.
func CountBooked(days []Day) int {
	count := 0

	for _, day := range days {
		for _, slot := range day.Slots {
			if slot.Booking != nil {
				count++
			}
		}
	}

	return count
}

// TotalSlots is the number of bookable slots in a range: one per day plus
// the extra suhoor slot on the dual day.
func TotalSlots(totalDays int) int {
	return totalDays + 1
}

func newSlot(date time.Time, kind SlotKind, isDualDay bool, bookings map[string]bookingModel.Booking) Slot {
	slot := Slot{
		ID:   SlotID(date, kind, isDualDay),
		Kind: kind,
	}

	if booking, ok := bookings[slot.ID]; ok {
		slot.Booking = &booking
	}

	return slot
}
