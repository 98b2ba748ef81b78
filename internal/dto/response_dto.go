package dto

type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	ResultID *uint  `json:"result_id,omitempty"`
}

type SuccessResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type UserDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LoginResponseDTO struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

// APIIndexDTO is served on the API root as a health check.
type APIIndexDTO struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
