package dto

// Envelope is the uniform response shape: a success flag plus a message.
// Read endpoints add payload fields on top of it.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK builds a success envelope.
func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Fail builds a failure envelope.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
