package models

type AuthProvider struct {
	IDAuthProvider   uint             `gorm:"column:id_auth_provider;primaryKey" json:"id_auth_provider"`
	Provider         AuthProviderKind `gorm:"size:20;not null" json:"provider"`
	ProviderIDGoogle string           `gorm:"size:255" json:"provider_id_google"`
	Token            string           `gorm:"size:255" json:"token"`
}

// UserAuthProvider links users to the providers they signed in with.
type UserAuthProvider struct {
	IDUser         uint `gorm:"column:id_user;primaryKey" json:"id_user"`
	IDAuthProvider uint `gorm:"column:id_auth_provider;primaryKey" json:"id_auth_provider"`
}
