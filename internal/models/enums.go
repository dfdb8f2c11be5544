package models

// ===============================
// Appointment Status
// ===============================

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusDone      AppointmentStatus = "done"
)

// Valid reports whether the value belongs to the closed status set.
// Transitions themselves are unrestricted; only membership is checked.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusDone:
		return true
	}
	return false
}

// ===============================
// Day Of Week
// ===============================

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// ===============================
// Auth Provider Kind
// ===============================

type AuthProviderKind string

const (
	ProviderLocal  AuthProviderKind = "local"
	ProviderGoogle AuthProviderKind = "google"
)

func (p AuthProviderKind) Valid() bool {
	return p == ProviderLocal || p == ProviderGoogle
}
