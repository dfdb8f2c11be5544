package models

// Appointment stores the date as YYYY-MM-DD and the times as HH:MM strings,
// validated at the handler boundary. No overlap check exists anywhere:
// double-booking is accepted behavior.
type Appointment struct {
	IDAppointment   uint              `gorm:"column:id_appointment;primaryKey" json:"id_appointment"`
	IDCustomer      uint              `gorm:"column:id_customer;not null" json:"id_customer"`
	IDBarber        uint              `gorm:"column:id_barber;not null" json:"id_barber"`
	AppointmentDate string            `gorm:"column:appointment_date;size:10;not null" json:"appointment_date"`
	StartTime       string            `gorm:"column:start_time;size:8;not null" json:"start_time"`
	EndTime         string            `gorm:"column:end_time;size:8;not null" json:"end_time"`
	Status          AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`

	Customer *Customer `gorm:"foreignKey:IDCustomer;references:IDCustomer;constraint:OnUpdate:CASCADE" json:"customer"`
	Barber   *Barber   `gorm:"foreignKey:IDBarber;references:IDBarber;constraint:OnUpdate:CASCADE" json:"barber"`
}

func (Appointment) TableName() string {
	return "appointment"
}
