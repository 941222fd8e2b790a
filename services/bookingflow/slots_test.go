package bookingflow

import (
	"testing"
	"time"

	"barberbook/models"
)

func TestSlotTimes(t *testing.T) {
	slots := SlotTimes()
	if len(slots) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("first slot = %q, want 09:00", slots[0])
	}
	if slots[len(slots)-1] != "18:30" {
		t.Errorf("last slot = %q, want 18:30", slots[len(slots)-1])
	}
}

func TestValidSlotTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"18:30", true},
		{"19:00", false},
		{"08:30", false},
		{"09:15", false},
		{"", false},
		{"garbage", false},
	}
	for _, tc := range cases {
		if got := validSlotTime(tc.in); got != tc.want {
			t.Errorf("validSlotTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateNotPast(t *testing.T) {
	now := time.Date(2025, 3, 5, 16, 45, 0, 0, time.UTC)
	cases := []struct {
		date string
		want bool
	}{
		{"2025-03-05", true},
		{"2025-03-06", true},
		{"2026-01-01", true},
		{"2025-03-04", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		if got := dateNotPast(tc.date, now); got != tc.want {
			t.Errorf("dateNotPast(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestParseStartAt(t *testing.T) {
	got, err := parseStartAt("2025-03-10", "10:00", "America/Chicago")
	if err != nil {
		t.Fatalf("parseStartAt: %v", err)
	}
	chicago, _ := time.LoadLocation("America/Chicago")
	want := time.Date(2025, 3, 10, 10, 0, 0, 0, chicago)
	if !got.Equal(want) {
		t.Errorf("parseStartAt = %v, want %v", got, want)
	}

	// Unknown timezone falls back to UTC rather than failing the booking.
	got, err = parseStartAt("2025-03-10", "10:00", "Mars/Olympus")
	if err != nil {
		t.Fatalf("parseStartAt with bad zone: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("bad zone did not fall back to UTC: %v", got)
	}
}

func TestAvailableSlots(t *testing.T) {
	busy := []models.Appointment{{
		BarberID: "barber-mike",
		StartAt:  time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		EndAt:    time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC),
	}}

	free := availableSlots("2025-03-10", "", 30, busy)
	if contains(free, "10:00") {
		t.Errorf("10:00 should be trimmed by the busy appointment")
	}
	for _, s := range []string{"09:30", "10:30"} {
		if !contains(free, s) {
			t.Errorf("%s should stay free for a 30 minute visit", s)
		}
	}

	// A longer visit starting at 09:30 would run into the busy block.
	free = availableSlots("2025-03-10", "", 60, busy)
	for _, s := range []string{"09:30", "10:00"} {
		if contains(free, s) {
			t.Errorf("%s should be trimmed for a 60 minute visit", s)
		}
	}
	if !contains(free, "10:30") {
		t.Errorf("10:30 should stay free for a 60 minute visit")
	}
}

func TestAvailableSlotsIgnoresOtherDays(t *testing.T) {
	busy := []models.Appointment{{
		StartAt: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC),
	}}
	free := availableSlots("2025-03-10", "", 30, busy)
	if len(free) != len(SlotTimes()) {
		t.Errorf("appointments on another day trimmed the grid: %d slots", len(free))
	}
}

func contains(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}
