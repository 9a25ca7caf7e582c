package connect

import (
	"time"

	"latewiz/models"
)

// AttemptState is the callback flow's position. processing and
// select_entity can still move; success and error are terminal (success
// carries a redirect the client performs after RedirectAfterMS).
type AttemptState string

const (
	StateProcessing   AttemptState = "processing"
	StateSelectEntity AttemptState = "select_entity"
	StateSuccess      AttemptState = "success"
	StateError        AttemptState = "error"
)

// Redirect scheduled once an attempt succeeds.
const (
	RedirectDelayMS = 1500
	RedirectTarget  = "/dashboard/accounts"
)

// User-facing failure messages. The underlying cause is logged, never
// shown.
const (
	MsgInvalidParams    = "Invalid callback parameters"
	MsgLoadOptions      = "Failed to load options. Please try again."
	MsgFinalizeFailed   = "Failed to complete connection. Please try again."
	MsgProcessingFailed = "Failed to process connection. Please try again."
)

// Attempt is one in-flight account connection, created when the browser
// lands on the callback URL. It lives only in the attempt store and
// expires with its TTL when abandoned; the provider is never told about
// abandoned attempts.
type Attempt struct {
	ID       string          `json:"id"`
	State    AttemptState    `json:"state"`
	Platform models.Platform `json:"platform,omitempty"`
	Step     string          `json:"step,omitempty"`

	// ConnectedAs names the platform reported by a direct "connected"
	// callback, for the success toast.
	ConnectedAs string `json:"connectedAs,omitempty"`

	// Message is the terminal failure reason shown to the user.
	Message string `json:"message,omitempty"`

	// Entities are the selectable sub-entities once the lookup ran.
	Entities []models.Entity `json:"entities,omitempty"`

	// Opaque provider tokens captured from the callback query. Each has
	// a short provider-side expiry that is not tracked here.
	TempToken        string `json:"tempToken,omitempty"`
	UserProfile      string `json:"userProfile,omitempty"`
	ConnectToken     string `json:"connectToken,omitempty"`
	PendingDataToken string `json:"pendingDataToken,omitempty"`
	ProfileID        string `json:"profileId,omitempty"`

	RedirectTo      string `json:"redirectTo,omitempty"`
	RedirectAfterMS int    `json:"redirectAfterMs,omitempty"`

	// Version increments on every transition; async results are applied
	// compare-and-set against it so stale lookups are discarded.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// Terminal reports whether the attempt can still transition.
func (a *Attempt) Terminal() bool {
	return a.State == StateSuccess || a.State == StateError
}

func (a *Attempt) fail(message string) {
	a.State = StateError
	a.Message = message
	a.Version++
}

func (a *Attempt) succeed() {
	a.State = StateSuccess
	a.Message = ""
	a.RedirectTo = RedirectTarget
	a.RedirectAfterMS = RedirectDelayMS
	a.Version++
}
