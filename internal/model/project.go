package model

type ProjectCreateParams struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProjectResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     int    `json:"owner_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
