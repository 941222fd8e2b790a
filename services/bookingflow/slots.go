package bookingflow

import (
	"fmt"
	"time"

	"barberbook/models"
)

// The daily booking window. Slots start on the half hour from open to the
// last start that still fits a half-hour visit before close.
const (
	openHour  = 9
	closeHour = 19
	slotStep  = 30 * time.Minute
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// SlotTimes returns the fixed discrete slot list ("09:00" ... "18:30").
func SlotTimes() []string {
	var slots []string
	for h := openHour; h < closeHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return slots
}

// validSlotTime reports whether t is one of the fixed slot times.
func validSlotTime(t string) bool {
	for _, s := range SlotTimes() {
		if s == t {
			return true
		}
	}
	return false
}

// parseStartAt combines a wizard date and time in the location's timezone.
func parseStartAt(date, clock, timezone string) (time.Time, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		loc = time.UTC
	}
	return time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, loc)
}

// dateNotPast reports whether date is today or later relative to now.
func dateNotPast(date string, now time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	return !d.Before(today)
}

// overlaps reports whether [start, end) intersects the appointment's
// interval. Both intervals are half-open.
func overlaps(start, end time.Time, apt models.Appointment) bool {
	return start.Before(apt.EndAt) && apt.StartAt.Before(end)
}

// availableSlots filters the fixed grid down to starts where a visit of the
// given duration would not overlap any busy appointment. The check is
// advisory: it trims the choices shown to the client, the submit path
// re-checks before creating.
func availableSlots(date, timezone string, durationMinutes int, busy []models.Appointment) []string {
	duration := time.Duration(durationMinutes) * time.Minute
	var free []string
	for _, s := range SlotTimes() {
		start, err := parseStartAt(date, s, timezone)
		if err != nil {
			continue
		}
		end := start.Add(duration)
		conflict := false
		for _, apt := range busy {
			if overlaps(start, end, apt) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, s)
		}
	}
	return free
}
