package models

import "testing"

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusDone} {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	for _, s := range []AppointmentStatus{"", "rescheduled", "Pending", "PENDING"} {
		if s.Valid() {
			t.Fatalf("status %q should be invalid", s)
		}
	}
}

func TestDayOfWeekValid(t *testing.T) {
	for _, d := range []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday} {
		if !d.Valid() {
			t.Fatalf("day %q should be valid", d)
		}
	}
	for _, d := range []DayOfWeek{"", "Monday", "mon", "holiday"} {
		if d.Valid() {
			t.Fatalf("day %q should be invalid", d)
		}
	}
}

func TestAuthProviderKindValid(t *testing.T) {
	for _, p := range []AuthProviderKind{ProviderLocal, ProviderGoogle} {
		if !p.Valid() {
			t.Fatalf("provider %q should be valid", p)
		}
	}
	for _, p := range []AuthProviderKind{"", "github", "Google"} {
		if p.Valid() {
			t.Fatalf("provider %q should be invalid", p)
		}
	}
}
