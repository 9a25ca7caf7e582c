package queue

import (
	"sort"

	"latewiz/models"
)

// DaySlots is one display row: a weekday and its slots in posting order.
type DaySlots struct {
	DayOfWeek int                `json:"dayOfWeek"`
	Slots     []models.QueueSlot `json:"slots"`
}

// GroupSlots arranges a schedule's slots for display: grouped by weekday
// (Sunday first), sorted within each day by time of day. The sort is
// stable, so slots sharing a time keep their insertion order. Days with
// no slots are omitted.
func GroupSlots(slots []models.QueueSlot) []DaySlots {
	byDay := make(map[int][]models.QueueSlot)
	for _, slot := range slots {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			continue
		}
		byDay[slot.DayOfWeek] = append(byDay[slot.DayOfWeek], slot)
	}

	var grouped []DaySlots
	for day := 0; day <= 6; day++ {
		daySlots, ok := byDay[day]
		if !ok {
			continue
		}
		sort.SliceStable(daySlots, func(i, j int) bool {
			return daySlots[i].TimeOfDay < daySlots[j].TimeOfDay
		})
		grouped = append(grouped, DaySlots{DayOfWeek: day, Slots: daySlots})
	}
	return grouped
}
