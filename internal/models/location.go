package models

type Location struct {
	IDLocation   uint   `gorm:"column:id_location;primaryKey" json:"id_location"`
	IDBarbershop uint   `gorm:"column:id_barbershop;not null" json:"id_barbershop"`
	IDDepartment uint   `gorm:"column:id_department;not null" json:"id_department"`
	IDCity       uint   `gorm:"column:id_city;not null" json:"id_city"`
	Address      string `gorm:"size:255;not null" json:"address"`
	OpeningHour  string `gorm:"column:opening_hour;size:8;not null" json:"opening_hour"`
	ClosingHour  string `gorm:"column:closing_hour;size:8;not null" json:"closing_hour"`

	Barbershop *Barbershop `gorm:"foreignKey:IDBarbershop;references:IDBarbershop;constraint:OnUpdate:CASCADE" json:"barbershop"`
	Department *Department `gorm:"foreignKey:IDDepartment;references:IDDepartment;constraint:OnUpdate:CASCADE" json:"department"`
	City       *City       `gorm:"foreignKey:IDCity;references:IDCity;constraint:OnUpdate:CASCADE" json:"city"`
}
