package models

// Barbershop references Staff by id only. Declaring the relation struct here
// would close a constraint cycle (barbershop -> staff -> barber -> barbershop)
// that AutoMigrate cannot order; the reference is checked at the handler
// boundary instead.
type Barbershop struct {
	IDBarbershop uint   `gorm:"column:id_barbershop;primaryKey" json:"id_barbershop"`
	IDStaff      uint   `gorm:"column:id_staff;not null" json:"id_staff"`
	Phone        string `gorm:"size:50" json:"phone"`
}
