package entity

import "time"

// Patient represents one patient row, keyed to a login row the same way the
// doctor table is.
type Patient struct {
	PatientID  uint      `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	LoginID    uint      `gorm:"column:login_id;not null;index" json:"login_id"`
	Name       string    `gorm:"type:varchar(255)" json:"name"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	Age        int       `json:"age"`
	Gender     string    `gorm:"type:varchar(10)" json:"gender"`
	Dob        time.Time `gorm:"column:dob;type:date" json:"dob"`
	Number     string    `gorm:"type:varchar(20)" json:"number"`
	Address    string    `gorm:"type:text" json:"address,omitempty"`
	BloodGroup string    `gorm:"column:blood_group;type:varchar(5)" json:"blood_group,omitempty"`

	// Relationships
	Login Login `gorm:"foreignKey:LoginID;references:LoginID" json:"login,omitempty"`
}

func (Patient) TableName() string {
	return "patient"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
