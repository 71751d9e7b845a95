package entity

import "time"

// Doctor represents one doctor row. The login_id index is intentionally
// non-unique: the profile-save flow checks for an existing row before writing,
// and that check is not serialized against concurrent saves.
type Doctor struct {
	DoctorID       uint      `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctor_id"`
	LoginID        uint      `gorm:"column:login_id;not null;index" json:"login_id"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Age            int       `json:"age"`
	Gender         string    `gorm:"type:varchar(10)" json:"gender"`
	Dob            time.Time `gorm:"column:dob;type:date" json:"dob"`
	Hospital       string    `gorm:"type:varchar(255)" json:"hospital"`
	HospitalLoc    string    `gorm:"column:hospital_loc;type:varchar(255)" json:"hospital_loc"`
	Specialization string    `gorm:"type:varchar(100);index" json:"specialization"`
	Experience     int       `json:"experience"`
	Fees           int       `json:"fees"`
	Education      string    `gorm:"type:varchar(255)" json:"education"`
	Number         string    `gorm:"type:varchar(20)" json:"number"`
	DocPic         string    `gorm:"column:doc_pic;type:text" json:"doc_pic,omitempty"`

	// Relationships
	Login Login `gorm:"foreignKey:LoginID;references:LoginID" json:"login,omitempty"`
}

func (Doctor) TableName() string {
	return "doctor"
}
