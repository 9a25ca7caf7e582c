package models

// MediaItem is an image or video attached to a post.
type MediaItem struct {
	Type     string  `json:"type"` // "image" or "video"
	URL      string  `json:"url"`
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// PlatformPost targets one connected account, optionally overriding the
// shared content for that platform.
type PlatformPost struct {
	Platform             Platform    `json:"platform"`
	AccountID            string      `json:"accountId"`
	CustomContent        string      `json:"customContent,omitempty"`
	PlatformSpecificData interface{} `json:"platformSpecificData,omitempty"`
}

// CreatePostRequest is the compose payload forwarded to the provider.
type CreatePostRequest struct {
	Content           string         `json:"content"`
	MediaItems        []MediaItem    `json:"mediaItems,omitempty"`
	Platforms         []PlatformPost `json:"platforms"`
	ScheduledFor      string         `json:"scheduledFor,omitempty"`
	PublishNow        bool           `json:"publishNow,omitempty"`
	Timezone          string         `json:"timezone,omitempty"`
	QueuedFromProfile string         `json:"queuedFromProfile,omitempty"`
}

// UpdatePostRequest carries partial edits to an existing post.
type UpdatePostRequest struct {
	Content      string         `json:"content,omitempty"`
	MediaItems   []MediaItem    `json:"mediaItems,omitempty"`
	Platforms    []PlatformPost `json:"platforms,omitempty"`
	ScheduledFor string         `json:"scheduledFor,omitempty"`
}

// PostFilters narrows a post listing.
type PostFilters struct {
	ProfileID string
	Status    string // draft, scheduled, publishing, published, failed
	DateFrom  string
	DateTo    string
	Page      int
	Limit     int
}
