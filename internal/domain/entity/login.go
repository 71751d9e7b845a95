package entity

import "time"

// Login represents the centralized authentication table. One login row maps to
// at most one doctor or patient row; profile rows are never created here.
type Login struct {
	LoginID   uint      `gorm:"column:login_id;primaryKey;autoIncrement" json:"login_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Login) TableName() string {
	return "login"
}

// Role constants
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)
