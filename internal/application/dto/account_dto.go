package dto

// AccountResponse salida de una cuenta (sin hash).
type AccountResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Status   string `json:"status"`
}
