package dto

// BasicProfile is the bare-user fallback returned by GET /api/profile when
// no staff profile exists for the email.
type BasicProfile struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
