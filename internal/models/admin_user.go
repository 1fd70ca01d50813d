package models

// AdminUser is the single privileged identity behind the dashboard.
type AdminUser struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
}
