package models

// UsageLimits and UsageCounts mirror the provider's plan accounting.
type UsageLimits struct {
	Uploads  int `json:"uploads"`
	Profiles int `json:"profiles"`
}

type UsageCounts struct {
	Uploads  int `json:"uploads"`
	Profiles int `json:"profiles"`
}

// UsageStats is the provider's usage report; fetching it doubles as the
// cheapest way to prove an API key works.
type UsageStats struct {
	PlanName string      `json:"planName"`
	Limits   UsageLimits `json:"limits"`
	Usage    UsageCounts `json:"usage"`
}
