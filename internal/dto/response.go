package dto

// Envelope is the uniform response wrapper for every endpoint. Failures set
// Success=false and a human-readable message, never a partial Data.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps a payload in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failure envelope with the given message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
