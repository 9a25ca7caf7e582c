package models

// Account is a connected social account as the provider reports it.
type Account struct {
	ID             string   `json:"_id"`
	Platform       Platform `json:"platform"`
	Username       string   `json:"username"`
	DisplayName    string   `json:"displayName,omitempty"`
	IsActive       bool     `json:"isActive"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	ProfileID      string   `json:"profileId"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

// AccountListResponse wraps the provider's account listing.
type AccountListResponse struct {
	Accounts []Account `json:"accounts"`
}

// AccountHealth reports whether a connected account's credentials still work.
type AccountHealth struct {
	AccountID string `json:"accountId"`
	IsHealthy bool   `json:"isHealthy"`
	Error     string `json:"error,omitempty"`
}

// AccountHealthResponse wraps the provider's health listing.
type AccountHealthResponse struct {
	Health []AccountHealth `json:"health,omitempty"`
}

// ConnectURLResponse carries the provider-hosted OAuth URL the browser is
// sent to when linking a new account.
type ConnectURLResponse struct {
	URL string `json:"url,omitempty"`
}
