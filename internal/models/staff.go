package models

type Staff struct {
	IDStaff  uint `gorm:"column:id_staff;primaryKey" json:"id_staff"`
	IDBarber uint `gorm:"column:id_barber;not null" json:"id_barber"`

	Barber *Barber `gorm:"foreignKey:IDBarber;references:IDBarber;constraint:OnUpdate:CASCADE" json:"barber"`
}

func (Staff) TableName() string {
	return "staff"
}
