package models

type Specialty struct {
	IDSpecialty     uint   `gorm:"column:id_specialty;primaryKey" json:"id_specialty"`
	Name            string `gorm:"size:100;not null" json:"name"`
	YearsExperience *int   `gorm:"column:years_experience" json:"years_experience"`
}
