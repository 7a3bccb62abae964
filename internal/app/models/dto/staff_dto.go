package dto

import "github.com/archiva/campusconnect/internal/app/models"

// StaffPayload carries the editable staff fields for admin create/update.
// Password is optional on update; when present it is rehashed.
type StaffPayload struct {
	Prefix                  string `json:"prefix"`
	FirstName               string `json:"first_name" binding:"required"`
	LastName                string `json:"last_name"`
	Gender                  string `json:"gender"`
	DateOfBirth             string `json:"date_of_birth"`
	BloodGroup              string `json:"blood_group"`
	MobileNumber            string `json:"mobile_number"`
	MaritalStatus           string `json:"marital_status"`
	AlternativeMobileNumber string `json:"alternative_mobile_number"`
	AlternativeEmail        string `json:"alternative_email"`
	AadhaarNumber           string `json:"aadhaar_number"`
	Religion                string `json:"religion"`
	MotherTongue            string `json:"mother_tongue"`
	Nationality             string `json:"nationality"`
	State                   string `json:"state"`
	ProfileStatus           string `json:"profile_status"`
	Department              string `json:"department" binding:"required"`
	Email                   string `json:"email" binding:"required,email"`
	Role                    string `json:"role"`
	Password                string `json:"password"`
}

// SaveStaffRequest wraps the payload under the key the client sends.
type SaveStaffRequest struct {
	StaffData StaffPayload `json:"staffData" binding:"required"`
}

// StaffListItem is the slim staff projection for admin pickers.
type StaffListItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StaffSummary is the department roster projection.
type StaffSummary struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// StaffListResponse is the GET /api/admin/staff-list payload.
type StaffListResponse struct {
	Envelope
	StaffList []StaffListItem `json:"staffList"`
}

// StaffCollectionResponse is the GET /api/admin/staff payload.
type StaffCollectionResponse struct {
	Envelope
	Staff []models.Staff `json:"staff"`
}

// StaffResponse is the GET /api/admin/staff/:id payload.
type StaffResponse struct {
	Envelope
	Staff models.Staff `json:"staff"`
}
