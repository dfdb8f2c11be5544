package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/barberian/barberian-api/internal/models"
)

func TestCreateUser_HashesPasswordAndHidesIt(t *testing.T) {
	r, db := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/users/", map[string]any{
		"full_name": "Ana Gómez",
		"email":     "ana@example.com",
		"password":  "s3cret-pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	if strings.Contains(w.Body.String(), "s3cret-pass") || strings.Contains(w.Body.String(), "password") {
		t.Fatalf("credential leaked in response: %s", w.Body.String())
	}

	var created models.User
	decode(t, w, &created)
	if created.IDUser == 0 {
		t.Fatalf("expected generated id")
	}

	var row models.User
	if err := db.First(&row, created.IDUser).Error; err != nil {
		t.Fatalf("load user row: %v", err)
	}
	if row.PasswordHash == "s3cret-pass" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	r, db := newTestServer(t)

	body := map[string]any{
		"full_name": "Ana Gómez",
		"email":     "dup@example.com",
		"password":  "pass1234",
	}

	if w := doRequest(t, r, http.MethodPost, "/users/", body); w.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d", w.Code)
	}

	w := doRequest(t, r, http.MethodPost, "/users/", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row, got %d", count)
	}
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/users/", map[string]any{
		"full_name": "Ana",
		"email":     "not-an-email",
		"password":  "pass1234",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateUser_UnknownRole(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/users/", map[string]any{
		"full_name": "Ana",
		"email":     "ana2@example.com",
		"password":  "pass1234",
		"id_role":   42,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", w.Code)
	}
}

func TestGetUser_EmbedsRole(t *testing.T) {
	r, db := newTestServer(t)

	role := models.Role{Name: "admin"}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	user := models.User{FullName: "Ana", Email: "ana3@example.com", IDRole: &role.IDRole}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/users/%d", user.IDUser), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got models.User
	decode(t, w, &got)
	if got.Role == nil || got.Role.Name != "admin" {
		t.Fatalf("expected embedded role, got %+v", got.Role)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/users/12345", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
