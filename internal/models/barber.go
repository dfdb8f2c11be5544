package models

type Barber struct {
	IDBarber         uint   `gorm:"column:id_barber;primaryKey" json:"id_barber"`
	IDUser           uint   `gorm:"column:id_user;not null" json:"id_user"`
	IDGenre          uint   `gorm:"column:id_genre;not null" json:"id_genre"`
	IDBarbershop     *uint  `gorm:"column:id_barbershop" json:"id_barbershop"`
	IDSpecialty      *uint  `gorm:"column:id_specialty" json:"id_specialty"`
	IDDepartment     uint   `gorm:"column:id_department;not null" json:"id_department"`
	IDCity           uint   `gorm:"column:id_city;not null" json:"id_city"`
	IDBarberSchedule *uint  `gorm:"column:id_barber_schedule" json:"id_barber_schedule"`
	Phone            string `gorm:"size:255" json:"phone"`
	Direction        string `gorm:"size:255" json:"direction"`
	Points           int    `gorm:"not null;default:0" json:"points"`

	User       *User           `gorm:"foreignKey:IDUser;references:IDUser;constraint:OnUpdate:CASCADE" json:"user"`
	Genre      *Genre          `gorm:"foreignKey:IDGenre;references:IDGenre;constraint:OnUpdate:CASCADE" json:"genre"`
	Specialty  *Specialty      `gorm:"foreignKey:IDSpecialty;references:IDSpecialty;constraint:OnUpdate:CASCADE" json:"specialty"`
	Department *Department     `gorm:"foreignKey:IDDepartment;references:IDDepartment;constraint:OnUpdate:CASCADE" json:"department"`
	City       *City           `gorm:"foreignKey:IDCity;references:IDCity;constraint:OnUpdate:CASCADE" json:"city"`
	Schedule   *BarberSchedule `gorm:"foreignKey:IDBarberSchedule;references:IDSchedule;constraint:OnUpdate:CASCADE" json:"schedule"`
}
