package models

// Entity is a provider-side sub-resource selectable during an OAuth
// connection: a Facebook Page, LinkedIn Organization, Pinterest Board or
// Google Business Location.
type Entity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// Entity-list responses, one field per platform.

type FacebookPagesResponse struct {
	Pages []Entity `json:"pages"`
}

type LinkedInOrganizationsResponse struct {
	Organizations []Entity `json:"organizations"`
}

type PinterestBoardsResponse struct {
	Boards []Entity `json:"boards"`
}

type GoogleBusinessLocationsResponse struct {
	Locations []Entity `json:"locations"`
}

// SelectEntityRequest is the finalize-selection body submitted once the
// user picks an entity. Exactly one of the *ID fields is set, matching
// the platform.
type SelectEntityRequest struct {
	TempToken      string `json:"tempToken,omitempty"`
	UserProfile    string `json:"userProfile,omitempty"`
	ProfileID      string `json:"profileId"`
	PageID         string `json:"pageId,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
	BoardID        string `json:"boardId,omitempty"`
	LocationID     string `json:"locationId,omitempty"`
}
