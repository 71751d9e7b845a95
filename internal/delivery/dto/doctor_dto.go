package dto

// Request DTOs

type CreateDoctorRequest struct {
	LoginID        uint   `json:"login_id" validate:"required"`
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Age            int    `json:"age" validate:"omitempty,gte=0"`
	Gender         string `json:"gender" validate:"omitempty,oneof=M F"`
	Dob            string `json:"dob" validate:"omitempty"`
	Hospital       string `json:"hospital" validate:"omitempty"`
	HospitalLoc    string `json:"hospital_loc" validate:"omitempty"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Experience     int    `json:"experience" validate:"omitempty,gte=0"`
	Fees           int    `json:"fees" validate:"omitempty,gte=0"`
	Education      string `json:"education" validate:"omitempty"`
	Number         string `json:"number" validate:"omitempty"`
	DocPic         string `json:"doc_pic" validate:"omitempty"`
}

// UpdateDoctorRequest replaces the full mutable column set of a row.
type UpdateDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Age            int    `json:"age" validate:"omitempty,gte=0"`
	Gender         string `json:"gender" validate:"omitempty,oneof=M F"`
	Dob            string `json:"dob" validate:"omitempty"`
	Hospital       string `json:"hospital" validate:"omitempty"`
	HospitalLoc    string `json:"hospital_loc" validate:"omitempty"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Experience     int    `json:"experience" validate:"omitempty,gte=0"`
	Fees           int    `json:"fees" validate:"omitempty,gte=0"`
	Education      string `json:"education" validate:"omitempty"`
	Number         string `json:"number" validate:"omitempty"`
	DocPic         string `json:"doc_pic" validate:"omitempty"`
}

// SaveDoctorProfileRequest carries the profile-mutable column set. The email
// resolves the login row; the caller never supplies a login_id directly.
type SaveDoctorProfileRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Mobile         string `json:"mobile" validate:"omitempty"`
	Gender         string `json:"gender" validate:"omitempty,oneof=M F"`
	Experience     int    `json:"experience" validate:"omitempty,gte=0"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Fees           int    `json:"fees" validate:"omitempty,gte=0"`
	Hospital       string `json:"hospital" validate:"omitempty"`
	HospitalLoc    string `json:"hospital_loc" validate:"omitempty"`
	Education      string `json:"education" validate:"omitempty"`
	Dob            string `json:"dob" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	DoctorID       uint   `json:"doctor_id"`
	LoginID        uint   `json:"login_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Dob            string `json:"dob,omitempty"`
	Hospital       string `json:"hospital"`
	HospitalLoc    string `json:"hospital_loc"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
	Fees           int    `json:"fees"`
	Education      string `json:"education"`
	Number         string `json:"number"`
	DocPic         string `json:"doc_pic,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
