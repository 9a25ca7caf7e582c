package models

// Profile is a named grouping of connected accounts and their queues,
// scoped per end-user workspace.
type Profile struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// ProfileListResponse wraps the provider's profile listing.
type ProfileListResponse struct {
	Profiles []Profile `json:"profiles"`
}
