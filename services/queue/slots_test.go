package queue

import (
	"testing"

	"latewiz/models"
)

func slot(day, hour, minute int) models.QueueSlot {
	return models.QueueSlot{DayOfWeek: day, TimeOfDay: hour*60 + minute}
}

func TestGroupSlots(t *testing.T) {
	t.Run("Groups By Day And Sorts Within Day", func(t *testing.T) {
		slots := []models.QueueSlot{
			slot(1, 9, 0),
			slot(1, 8, 0),
			slot(3, 10, 0),
		}

		grouped := GroupSlots(slots)
		if len(grouped) != 2 {
			t.Fatalf("expected 2 day groups, got %d", len(grouped))
		}
		if grouped[0].DayOfWeek != 1 || grouped[1].DayOfWeek != 3 {
			t.Errorf("day order = %d, %d", grouped[0].DayOfWeek, grouped[1].DayOfWeek)
		}

		day1 := grouped[0].Slots
		if len(day1) != 2 || day1[0].Time() != "08:00" || day1[1].Time() != "09:00" {
			t.Errorf("day 1 slots = %v", day1)
		}
		day3 := grouped[1].Slots
		if len(day3) != 1 || day3[0].Time() != "10:00" {
			t.Errorf("day 3 slots = %v", day3)
		}
	})

	t.Run("Sunday First", func(t *testing.T) {
		slots := []models.QueueSlot{
			slot(6, 12, 0),
			slot(0, 12, 0),
		}
		grouped := GroupSlots(slots)
		if len(grouped) != 2 || grouped[0].DayOfWeek != 0 || grouped[1].DayOfWeek != 6 {
			t.Errorf("grouped = %v", grouped)
		}
	})

	t.Run("Duplicate Times Are Kept", func(t *testing.T) {
		a := models.QueueSlot{DayOfWeek: 2, TimeOfDay: 600}
		b := models.QueueSlot{DayOfWeek: 2, TimeOfDay: 600}
		grouped := GroupSlots([]models.QueueSlot{a, b, slot(2, 9, 0)})
		if len(grouped) != 1 {
			t.Fatalf("expected 1 day group, got %d", len(grouped))
		}
		day := grouped[0].Slots
		if len(day) != 3 || day[0].Time() != "09:00" || day[1].TimeOfDay != 600 || day[2].TimeOfDay != 600 {
			t.Errorf("day slots = %v", day)
		}
	})

	t.Run("Out Of Range Days Are Dropped", func(t *testing.T) {
		grouped := GroupSlots([]models.QueueSlot{slot(7, 9, 0), slot(-1, 9, 0)})
		if len(grouped) != 0 {
			t.Errorf("expected no groups, got %v", grouped)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if grouped := GroupSlots(nil); len(grouped) != 0 {
			t.Errorf("expected no groups, got %v", grouped)
		}
	})
}
