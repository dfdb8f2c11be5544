package models

type Department struct {
	IDDepartment uint   `gorm:"column:id_department;primaryKey" json:"id_department"`
	Name         string `gorm:"size:100;not null" json:"name"`
}
