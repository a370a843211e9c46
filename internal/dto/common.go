package dto

// Response is the envelope every API endpoint renders.
type Response struct {
	Success  bool     `json:"success"`
	Data     any      `json:"data,omitempty"`
	Error    string   `json:"error,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any, warnings ...string) Response {
	return Response{Success: true, Data: data, Warnings: warnings}
}

// Fail builds a failed envelope. errs and warnings may be nil.
func Fail(message string, errs, warnings []string) Response {
	return Response{Success: false, Error: message, Errors: errs, Warnings: warnings}
}

// DeleteResponse reports the outcome of a delete.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
