package models

// Staff defines the staff profile model based on the 'staff' table.
// Every staff row references exactly one users row; deleting a staff member
// deletes its user in the same transaction (the cascade is manual).
type Staff struct {
	ID                      int64   `json:"id" db:"id"`
	UserID                  int64   `json:"user_id" db:"user_id"`
	Prefix                  string  `json:"prefix" db:"prefix"`
	FirstName               string  `json:"first_name" db:"first_name"`
	LastName                string  `json:"last_name" db:"last_name"`
	Gender                  string  `json:"gender" db:"gender"`
	DateOfBirth             string  `json:"date_of_birth" db:"date_of_birth"`
	BloodGroup              string  `json:"blood_group" db:"blood_group"`
	MobileNumber            string  `json:"mobile_number" db:"mobile_number"`
	MaritalStatus           string  `json:"marital_status" db:"marital_status"`
	AlternativeMobileNumber string  `json:"alternative_mobile_number" db:"alternative_mobile_number"`
	AlternativeEmail        string  `json:"alternative_email" db:"alternative_email"`
	AadhaarNumber           string  `json:"aadhaar_number" db:"aadhaar_number"`
	Religion                string  `json:"religion" db:"religion"`
	MotherTongue            string  `json:"mother_tongue" db:"mother_tongue"`
	Nationality             string  `json:"nationality" db:"nationality"`
	State                   string  `json:"state" db:"state"`
	ProfileStatus           string  `json:"profile_status" db:"profile_status"`
	Department              string  `json:"department" db:"department"`
	Email                   string  `json:"email" db:"email"`
	ProfilePictureURL       *string `json:"profile_picture_url" db:"profile_picture_url"`

	// Joined from the users row, no db column of their own here.
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}
