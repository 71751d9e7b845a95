package dto

// Request DTOs

type CreatePatientRequest struct {
	LoginID    uint   `json:"login_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Age        int    `json:"age" validate:"omitempty,gte=0"`
	Gender     string `json:"gender" validate:"omitempty,oneof=M F"`
	Dob        string `json:"dob" validate:"omitempty"`
	Number     string `json:"number" validate:"omitempty"`
	Address    string `json:"address" validate:"omitempty"`
	BloodGroup string `json:"blood_group" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Age        int    `json:"age" validate:"omitempty,gte=0"`
	Gender     string `json:"gender" validate:"omitempty,oneof=M F"`
	Dob        string `json:"dob" validate:"omitempty"`
	Number     string `json:"number" validate:"omitempty"`
	Address    string `json:"address" validate:"omitempty"`
	BloodGroup string `json:"blood_group" validate:"omitempty"`
}

type SavePatientProfileRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Mobile     string `json:"mobile" validate:"omitempty"`
	Gender     string `json:"gender" validate:"omitempty,oneof=M F"`
	Dob        string `json:"dob" validate:"omitempty"`
	Address    string `json:"address" validate:"omitempty"`
	BloodGroup string `json:"blood_group" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	PatientID  uint   `json:"patient_id"`
	LoginID    uint   `json:"login_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Dob        string `json:"dob,omitempty"`
	Number     string `json:"number"`
	Address    string `json:"address,omitempty"`
	BloodGroup string `json:"blood_group,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
