package models

type Customer struct {
	IDCustomer   uint   `gorm:"column:id_customer;primaryKey" json:"id_customer"`
	IDUser       uint   `gorm:"column:id_user;not null" json:"id_user"`
	IDGenre      uint   `gorm:"column:id_genre;not null" json:"id_genre"`
	Phone        string `gorm:"size:255" json:"phone"`
	Direction    string `gorm:"size:255" json:"direction"`
	IDDepartment uint   `gorm:"column:id_department;not null" json:"id_department"`
	IDCity       uint   `gorm:"column:id_city;not null" json:"id_city"`

	User       *User       `gorm:"foreignKey:IDUser;references:IDUser;constraint:OnUpdate:CASCADE" json:"user"`
	Genre      *Genre      `gorm:"foreignKey:IDGenre;references:IDGenre;constraint:OnUpdate:CASCADE" json:"genre"`
	Department *Department `gorm:"foreignKey:IDDepartment;references:IDDepartment;constraint:OnUpdate:CASCADE" json:"department"`
	City       *City       `gorm:"foreignKey:IDCity;references:IDCity;constraint:OnUpdate:CASCADE" json:"city"`
}
