package errmsg

import "fmt"

// DefaultMessage is used whenever no template can be resolved for a code.
const DefaultMessage = "An unexpected error occurred on the server."

// ErrorMessage is the error envelope returned to API clients.
type ErrorMessage struct {
	ID      string `json:"id"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Log renders the envelope as a single log line:
//
//	[6fd2f2b3-fc94-44d6-8f46-81529a40af19] E-REST-SERVER#599 (503): message
func (m ErrorMessage) Log() string {
	return fmt.Sprintf("[%s] %s (%d): %s", m.ID, m.Code, m.Status, m.Message)
}
