package types

// APIResponse is the standard success/data/error envelope returned by the
// HTTP surface.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func ErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Error: message}
}
