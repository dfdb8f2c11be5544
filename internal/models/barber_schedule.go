package models

// BarberSchedule is a reusable weekly working window. Times are stored as
// HH:MM strings, validated at the handler boundary.
type BarberSchedule struct {
	IDSchedule uint      `gorm:"column:id_schedule;primaryKey" json:"id_schedule"`
	DayOfWeek  DayOfWeek `gorm:"column:day_of_week;size:20;not null" json:"day_of_week"`
	StartTime  string    `gorm:"column:start_time;size:8;not null" json:"start_time"`
	EndTime    string    `gorm:"column:end_time;size:8;not null" json:"end_time"`
}

func (BarberSchedule) TableName() string {
	return "barber_schedule"
}
