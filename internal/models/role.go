package models

type Role struct {
	IDRole uint   `gorm:"column:id_role;primaryKey" json:"id_role"`
	Name   string `gorm:"size:100;not null" json:"name"`
}
