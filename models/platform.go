package models

// Platform identifies a social network supported by the provider.
type Platform string

const (
	PlatformInstagram      Platform = "instagram"
	PlatformTikTok         Platform = "tiktok"
	PlatformYouTube        Platform = "youtube"
	PlatformLinkedIn       Platform = "linkedin"
	PlatformPinterest      Platform = "pinterest"
	PlatformTwitter        Platform = "twitter"
	PlatformFacebook       Platform = "facebook"
	PlatformThreads        Platform = "threads"
	PlatformBluesky        Platform = "bluesky"
	PlatformSnapchat       Platform = "snapchat"
	PlatformGoogleBusiness Platform = "googlebusiness"
	PlatformReddit         Platform = "reddit"
	PlatformTelegram       Platform = "telegram"
)

// Platforms lists every supported platform.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformTikTok,
	PlatformYouTube,
	PlatformLinkedIn,
	PlatformPinterest,
	PlatformTwitter,
	PlatformFacebook,
	PlatformThreads,
	PlatformBluesky,
	PlatformSnapchat,
	PlatformGoogleBusiness,
	PlatformReddit,
	PlatformTelegram,
}

// PlatformNames maps platforms to their display names.
var PlatformNames = map[Platform]string{
	PlatformInstagram:      "Instagram",
	PlatformTikTok:         "TikTok",
	PlatformYouTube:        "YouTube",
	PlatformLinkedIn:       "LinkedIn",
	PlatformPinterest:      "Pinterest",
	PlatformTwitter:        "X (Twitter)",
	PlatformFacebook:       "Facebook",
	PlatformThreads:        "Threads",
	PlatformBluesky:        "Bluesky",
	PlatformSnapchat:       "Snapchat",
	PlatformGoogleBusiness: "Google Business",
	PlatformReddit:         "Reddit",
	PlatformTelegram:       "Telegram",
}

// PlatformsWithEntitySelection are the platforms whose OAuth flow requires
// choosing a sub-entity (page, organization, board or location) before the
// account is connected.
var PlatformsWithEntitySelection = []Platform{
	PlatformFacebook,
	PlatformLinkedIn,
	PlatformPinterest,
	PlatformGoogleBusiness,
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// RequiresEntitySelection reports whether connecting p involves the
// secondary entity-selection step.
func (p Platform) RequiresEntitySelection() bool {
	for _, sel := range PlatformsWithEntitySelection {
		if p == sel {
			return true
		}
	}
	return false
}
