package models

type City struct {
	IDCity       uint   `gorm:"column:id_city;primaryKey" json:"id_city"`
	Name         string `gorm:"size:100;not null" json:"name"`
	IDDepartment uint   `gorm:"column:id_department;not null" json:"id_department"`

	Department *Department `gorm:"foreignKey:IDDepartment;references:IDDepartment;constraint:OnUpdate:CASCADE" json:"department"`
}
