package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// QueueSlot is the canonical in-memory form of a weekly posting slot:
// DayOfWeek 0-6 with Sunday = 0, TimeOfDay in minutes since midnight.
// The two wire generations ({"time":"HH:mm"} and the legacy
// {"hour","minute"} pair) are normalized here at decode time and never
// leak past this type.
type QueueSlot struct {
	DayOfWeek int
	TimeOfDay int
}

// QueueSlotPayload is the wire form of a slot as the provider sends it.
// Either Time or the legacy Hour/Minute pair may be present.
type QueueSlotPayload struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Time      string `json:"time,omitempty"`
	Hour      *int   `json:"hour,omitempty"`
	Minute    *int   `json:"minute,omitempty"`
}

// FormatTime renders an hour/minute pair as a zero-padded "HH:mm" string.
// Callers are expected to reject out-of-range values.
func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseTime splits "HH:mm" into its components. The parse is lossy on
// purpose: a malformed component defaults to 0 rather than erroring,
// matching how the dashboard has always treated slot times.
func ParseTime(time string) (hour, minute int) {
	parts := strings.SplitN(time, ":", 2)
	if len(parts) > 0 {
		hour, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}

// SlotTime returns the "HH:mm" time of a wire slot, preferring the
// explicit time string, falling back to the legacy hour/minute pair and
// finally to "00:00". The fallback exists only to bridge the two schema
// generations; canonical slots never need it.
func (p QueueSlotPayload) SlotTime() string {
	if p.Time != "" {
		return p.Time
	}
	if p.Hour != nil && p.Minute != nil {
		return FormatTime(*p.Hour, *p.Minute)
	}
	return "00:00"
}

// Normalize converts a wire slot into its canonical form.
func (p QueueSlotPayload) Normalize() QueueSlot {
	hour, minute := ParseTime(p.SlotTime())
	return QueueSlot{DayOfWeek: p.DayOfWeek, TimeOfDay: hour*60 + minute}
}

// Hour returns the slot's hour component.
func (s QueueSlot) Hour() int { return s.TimeOfDay / 60 }

// Minute returns the slot's minute component.
func (s QueueSlot) Minute() int { return s.TimeOfDay % 60 }

// Time renders the slot time as "HH:mm".
func (s QueueSlot) Time() string { return FormatTime(s.Hour(), s.Minute()) }

// Valid reports whether the slot is within the weekly grid.
func (s QueueSlot) Valid() bool {
	return s.DayOfWeek >= 0 && s.DayOfWeek <= 6 && s.TimeOfDay >= 0 && s.TimeOfDay < 24*60
}

// UnmarshalJSON accepts both wire generations.
func (s *QueueSlot) UnmarshalJSON(data []byte) error {
	var payload QueueSlotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("invalid queue slot: %w", err)
	}
	*s = payload.Normalize()
	return nil
}

// MarshalJSON always emits the current schema.
func (s QueueSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(QueueSlotPayload{DayOfWeek: s.DayOfWeek, Time: s.Time()})
}

// QueueSchedule is a named weekly recurring schedule of posting slots for
// one profile. Duplicate (day, time) pairs are representable; the
// provider, not this model, decides whether they are meaningful.
type QueueSchedule struct {
	ID        string      `json:"_id,omitempty"`
	ProfileID string      `json:"profileId,omitempty"`
	Name      string      `json:"name,omitempty"`
	Timezone  string      `json:"timezone,omitempty"`
	Slots     []QueueSlot `json:"slots,omitempty"`
	Active    bool        `json:"active,omitempty"`
	IsDefault bool        `json:"isDefault,omitempty"`
	CreatedAt string      `json:"createdAt,omitempty"`
	UpdatedAt string      `json:"updatedAt,omitempty"`
	NextSlots []string    `json:"nextSlots,omitempty"`
}

// QueueListResponse is the provider's answer to a list-all query.
type QueueListResponse struct {
	Queues []QueueSchedule `json:"queues,omitempty"`
	Count  int             `json:"count,omitempty"`
}

// QueueSlotsResponse is the provider's answer to a single-queue query.
type QueueSlotsResponse struct {
	Exists    *bool          `json:"exists,omitempty"`
	Schedule  *QueueSchedule `json:"schedule,omitempty"`
	NextSlots []string       `json:"nextSlots,omitempty"`
}

// QueuePreviewResponse carries the next N future slot timestamps as the
// provider computed them.
type QueuePreviewResponse struct {
	ProfileID string   `json:"profileId,omitempty"`
	Count     int      `json:"count,omitempty"`
	Slots     []string `json:"slots,omitempty"`
}
