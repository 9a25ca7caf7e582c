package queue

import (
	"sort"
	"testing"
)

func TestTimezoneOptions(t *testing.T) {
	contains := func(options []string, tz string) bool {
		for _, o := range options {
			if o == tz {
				return true
			}
		}
		return false
	}

	t.Run("UTC First", func(t *testing.T) {
		options := TimezoneOptions()
		if len(options) == 0 || options[0] != "UTC" {
			t.Fatalf("expected UTC first, got %v", options[:1])
		}
	})

	t.Run("Includes Local Zone And Extras", func(t *testing.T) {
		options := TimezoneOptions("Asia/Kathmandu")
		if !contains(options, LocalTimezone()) {
			t.Errorf("expected local zone %q in options", LocalTimezone())
		}
		if !contains(options, "Asia/Kathmandu") {
			t.Error("expected Asia/Kathmandu in options")
		}
	})

	t.Run("No Duplicates", func(t *testing.T) {
		options := TimezoneOptions("UTC", "Europe/London", "Europe/London")
		seen := make(map[string]int)
		for _, o := range options {
			seen[o]++
		}
		for tz, n := range seen {
			if n > 1 {
				t.Errorf("zone %q appears %d times", tz, n)
			}
		}
	})

	t.Run("Invalid Extras Are Dropped", func(t *testing.T) {
		options := TimezoneOptions("Not/A_Zone", "")
		if contains(options, "Not/A_Zone") {
			t.Error("invalid zone should not appear")
		}
	})

	t.Run("Alphabetical After UTC", func(t *testing.T) {
		options := TimezoneOptions()
		rest := options[1:]
		if !sort.StringsAreSorted(rest) {
			t.Errorf("expected alphabetical order after UTC, got %v", rest)
		}
	})
}

func TestIsValidTimezone(t *testing.T) {
	if !IsValidTimezone("America/New_York") {
		t.Error("America/New_York should be valid")
	}
	if IsValidTimezone("Nope/Nowhere") {
		t.Error("Nope/Nowhere should be invalid")
	}
	if IsValidTimezone("") {
		t.Error("empty string should be invalid")
	}
}
