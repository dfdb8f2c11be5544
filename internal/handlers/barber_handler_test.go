package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/barberian/barberian-api/internal/models"
)

func TestCreateBarber_OptionalReferencesOmitted(t *testing.T) {
	r, db := newTestServer(t)

	user := seedUser(t, db, "barber@example.com")
	genre := seedGenre(t, db)
	department, city := seedGeo(t, db)

	w := doRequest(t, r, http.MethodPost, "/barbers/", map[string]any{
		"id_user":       user.IDUser,
		"id_genre":      genre.IDGenre,
		"id_department": department.IDDepartment,
		"id_city":       city.IDCity,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var barber models.Barber
	decode(t, w, &barber)
	if barber.IDBarber == 0 {
		t.Fatalf("expected generated id")
	}
	if barber.Points != 0 {
		t.Fatalf("expected default points 0, got %d", barber.Points)
	}
	if barber.IDBarbershop != nil || barber.IDSpecialty != nil || barber.IDBarberSchedule != nil {
		t.Fatalf("expected optional references to stay null")
	}
	if barber.Specialty != nil || barber.Schedule != nil {
		t.Fatalf("expected null optional embeds")
	}
	if barber.User == nil || barber.City == nil {
		t.Fatalf("expected embedded user and city")
	}
}

func TestCreateBarber_WithScheduleAndSpecialty(t *testing.T) {
	r, db := newTestServer(t)

	user := seedUser(t, db, "barber2@example.com")
	genre := seedGenre(t, db)
	department, city := seedGeo(t, db)

	specialty := models.Specialty{Name: "fades"}
	if err := db.Create(&specialty).Error; err != nil {
		t.Fatalf("seed specialty: %v", err)
	}
	schedule := models.BarberSchedule{DayOfWeek: models.Friday, StartTime: "09:00", EndTime: "17:00"}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}

	w := doRequest(t, r, http.MethodPost, "/barbers/", map[string]any{
		"id_user":            user.IDUser,
		"id_genre":           genre.IDGenre,
		"id_department":      department.IDDepartment,
		"id_city":            city.IDCity,
		"id_specialty":       specialty.IDSpecialty,
		"id_barber_schedule": schedule.IDSchedule,
		"points":             10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var barber models.Barber
	decode(t, w, &barber)
	if barber.Specialty == nil || barber.Specialty.Name != "fades" {
		t.Fatalf("expected embedded specialty, got %+v", barber.Specialty)
	}
	if barber.Schedule == nil || barber.Schedule.DayOfWeek != models.Friday {
		t.Fatalf("expected embedded schedule, got %+v", barber.Schedule)
	}
	if barber.Points != 10 {
		t.Fatalf("expected points 10, got %d", barber.Points)
	}
}

func TestCreateBarber_UnknownOptionalReference(t *testing.T) {
	r, db := newTestServer(t)

	user := seedUser(t, db, "barber3@example.com")
	genre := seedGenre(t, db)
	department, city := seedGeo(t, db)

	w := doRequest(t, r, http.MethodPost, "/barbers/", map[string]any{
		"id_user":       user.IDUser,
		"id_genre":      genre.IDGenre,
		"id_department": department.IDDepartment,
		"id_city":       city.IDCity,
		"id_specialty":  404,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown specialty, got %d", w.Code)
	}
}

func TestListBarbersByCity(t *testing.T) {
	r, db := newTestServer(t)

	barber := seedBarber(t, db, "city-barber@example.com")

	otherCity := models.City{Name: "Envigado", IDDepartment: barber.IDDepartment}
	if err := db.Create(&otherCity).Error; err != nil {
		t.Fatalf("seed city: %v", err)
	}
	otherUser := seedUser(t, db, "other-barber@example.com")
	other := models.Barber{
		IDUser:       otherUser.IDUser,
		IDGenre:      barber.IDGenre,
		IDDepartment: barber.IDDepartment,
		IDCity:       otherCity.IDCity,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed barber: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/barbers/by-city/%d", barber.IDCity), nil)
	var resp listEnvelope[models.Barber]
	decode(t, w, &resp)

	if resp.Total != 1 {
		t.Fatalf("expected one barber for city, got %d", resp.Total)
	}
	if resp.Data[0].IDBarber != barber.IDBarber {
		t.Fatalf("unexpected barber id %d", resp.Data[0].IDBarber)
	}
}

func TestGetBarber_NotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/barbers/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
