package models

import "gorm.io/gorm"

// AutoMigrate creates the full schema. Reference tables come first so that
// the belongs-to constraints of the larger entities can be emitted.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&Genre{},
		&Department{},
		&City{},
		&AuthProvider{},
		&User{},
		&UserAuthProvider{},
		&Specialty{},
		&BarberSchedule{},
		&Barbershop{},
		&Barber{},
		&Staff{},
		&Customer{},
		&Location{},
		&Appointment{},
		&ActivityLog{},
	)
}
