package dto

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser is the profile summary returned on successful login.
type LoginUser struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	Department        string  `json:"department"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// LoginResponse is the POST /login success payload.
type LoginResponse struct {
	Envelope
	User LoginUser `json:"user"`
}

// PasswordUpdateRequest is the PATCH /api/profile/password body. OldPassword
// is only consulted when the require_old_password policy is enabled.
type PasswordUpdateRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	OldPassword string `json:"old_password"`
}

// ProfilePictureResponse is the POST /api/profile/picture success payload.
type ProfilePictureResponse struct {
	Envelope
	FilePath string `json:"filePath"`
}
