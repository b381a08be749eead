package entity

import (
	"time"
)

// User represents the centralized account table
type User struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username          string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHashed    string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName         *string   `gorm:"type:varchar(120)" json:"first_name,omitempty"`
	LastName          *string   `gorm:"type:varchar(120)" json:"last_name,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime;not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	HasMedicalHistory bool      `gorm:"not null;default:false" json:"has_medical_history"`
	IsAdmin           bool      `gorm:"not null;default:false" json:"is_admin"`

	// Relationships
	Consultations []Consultation  `gorm:"foreignKey:UserID" json:"consultations,omitempty"`
	Answers       []ConsultAnswer `gorm:"foreignKey:UserID" json:"answers,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins the optional name parts for display purposes.
func (u *User) FullName() string {
	switch {
	case u.FirstName != nil && u.LastName != nil:
		return *u.FirstName + " " + *u.LastName
	case u.FirstName != nil:
		return *u.FirstName
	case u.LastName != nil:
		return *u.LastName
	default:
		return u.Username
	}
}
