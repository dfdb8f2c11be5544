package models

type Genre struct {
	IDGenre uint   `gorm:"column:id_genre;primaryKey" json:"id_genre"`
	Name    string `gorm:"size:50;not null" json:"name"`
}
