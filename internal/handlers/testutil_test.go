package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/barberian/barberian-api/internal/models"
	"github.com/barberian/barberian-api/internal/routes"
)

// newTestServer builds the full router over a private in-memory database.
// The database is named after the test so parallel tests never share state.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r, db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// --------- Fixtures (direct inserts, not HTTP) ---------

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{FullName: "Seed User", Email: email, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedGenre(t *testing.T, db *gorm.DB) models.Genre {
	t.Helper()
	genre := models.Genre{Name: "male"}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("seed genre: %v", err)
	}
	return genre
}

func seedGeo(t *testing.T, db *gorm.DB) (models.Department, models.City) {
	t.Helper()
	department := models.Department{Name: "Antioquia"}
	if err := db.Create(&department).Error; err != nil {
		t.Fatalf("seed department: %v", err)
	}
	city := models.City{Name: "Medellín", IDDepartment: department.IDDepartment}
	if err := db.Create(&city).Error; err != nil {
		t.Fatalf("seed city: %v", err)
	}
	return department, city
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	user := seedUser(t, db, email)
	genre := seedGenre(t, db)
	department, city := seedGeo(t, db)

	customer := models.Customer{
		IDUser:       user.IDUser,
		IDGenre:      genre.IDGenre,
		IDDepartment: department.IDDepartment,
		IDCity:       city.IDCity,
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func seedBarber(t *testing.T, db *gorm.DB, email string) models.Barber {
	t.Helper()
	user := seedUser(t, db, email)
	genre := seedGenre(t, db)
	department, city := seedGeo(t, db)

	barber := models.Barber{
		IDUser:       user.IDUser,
		IDGenre:      genre.IDGenre,
		IDDepartment: department.IDDepartment,
		IDCity:       city.IDCity,
	}
	if err := db.Create(&barber).Error; err != nil {
		t.Fatalf("seed barber: %v", err)
	}
	return barber
}

func seedStaff(t *testing.T, db *gorm.DB, barberID uint) models.Staff {
	t.Helper()
	staff := models.Staff{IDBarber: barberID}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return staff
}

func seedBarbershop(t *testing.T, db *gorm.DB, staffID uint) models.Barbershop {
	t.Helper()
	shop := models.Barbershop{IDStaff: staffID}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("seed barbershop: %v", err)
	}
	return shop
}
