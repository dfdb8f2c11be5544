package models

type User struct {
	IDUser       uint   `gorm:"column:id_user;primaryKey" json:"id_user"`
	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	IDRole       *uint  `gorm:"column:id_role" json:"id_role"`

	Role *Role `gorm:"foreignKey:IDRole;references:IDRole;constraint:OnUpdate:CASCADE" json:"role"`
}
