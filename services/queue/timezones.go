package queue

import (
	"os"
	"sort"
	"time"
)

// CommonTimezones is the curated set of IANA zones offered for quick
// selection. Covers major regions and population centers.
var CommonTimezones = []string{
	// UTC
	"UTC",
	// Americas
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Anchorage",
	"America/Toronto",
	"America/Vancouver",
	"America/Mexico_City",
	"America/Sao_Paulo",
	"America/Buenos_Aires",
	"America/Santiago",
	"America/Bogota",
	"America/Lima",
	// Pacific
	"Pacific/Honolulu",
	"Pacific/Auckland",
	// Europe
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Madrid",
	"Europe/Rome",
	"Europe/Amsterdam",
	"Europe/Brussels",
	"Europe/Stockholm",
	"Europe/Warsaw",
	"Europe/Moscow",
	"Europe/Istanbul",
	// Asia
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Bangkok",
	"Asia/Singapore",
	"Asia/Hong_Kong",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Asia/Seoul",
	"Asia/Jakarta",
	"Asia/Manila",
	// Australia
	"Australia/Sydney",
	"Australia/Melbourne",
	"Australia/Perth",
	"Australia/Brisbane",
	// Africa
	"Africa/Johannesburg",
	"Africa/Cairo",
	"Africa/Lagos",
}

// LocalTimezone returns the host's zone name, falling back to UTC when
// the runtime cannot name it.
func LocalTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" && IsValidTimezone(tz) {
		return tz
	}
	name := time.Local.String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}

// IsValidTimezone reports whether name is a loadable IANA zone.
func IsValidTimezone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// TimezoneOptions builds the selectable zone list: the curated set, the
// host's local zone, and any extra zones (e.g. a queue's configured
// zone) that validate. Duplicates collapse; the result is alphabetical
// with UTC forced first.
func TimezoneOptions(extra ...string) []string {
	seen := make(map[string]struct{}, len(CommonTimezones)+len(extra)+1)
	for _, tz := range CommonTimezones {
		seen[tz] = struct{}{}
	}
	seen[LocalTimezone()] = struct{}{}
	for _, tz := range extra {
		if tz != "" && IsValidTimezone(tz) {
			seen[tz] = struct{}{}
		}
	}

	options := make([]string, 0, len(seen))
	for tz := range seen {
		options = append(options, tz)
	}
	sort.Slice(options, func(i, j int) bool {
		if options[i] == "UTC" {
			return true
		}
		if options[j] == "UTC" {
			return false
		}
		return options[i] < options[j]
	})
	return options
}
