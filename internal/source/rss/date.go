package rss

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

var pubDateLayouts = []string{
	time.RFC1123Z,
	"02 Jan 06 15:04 -0700",
	time.RFC3339,
}

// itemPublished extracts the item's effective timestamp. "EST"-labeled
// timestamps get a daylight-saving correction before parsing: many feeds
// keep the label fixed year-round, so during the DST window the offset is
// reinterpreted as UTC-4. An item with no parseable date is excluded (ok ==
// false) rather than defaulted, so stale content can't appear fresh.
func itemPublished(item *gofeed.Item, now time.Time) (time.Time, bool) {
	raw := item.Published
	if raw == "" {
		raw = item.Updated
	}

	if t, ok := parseESTLabeled(raw, now); ok {
		return t, true
	}
	if item.PublishedParsed != nil {
		return *item.PublishedParsed, true
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed, true
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseESTLabeled(raw string, now time.Time) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasSuffix(raw, " EST") {
		return time.Time{}, false
	}

	offset := "-0500"
	if inUSDaylightSaving(now) {
		offset = "-0400"
	}
	fixed := strings.TrimSuffix(raw, " EST") + " " + offset

	for _, layout := range []string{time.RFC1123Z, "02 Jan 06 15:04 -0700"} {
		if t, err := time.Parse(layout, fixed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// inUSDaylightSaving reports whether the date falls within the US daylight-
// saving interval: second Sunday of March through first Sunday of November.
func inUSDaylightSaving(now time.Time) bool {
	year := now.Year()
	start := nthSunday(year, time.March, 2)
	end := nthSunday(year, time.November, 1)
	day := time.Date(year, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && day.Before(end)
}

// nthSunday returns the n-th Sunday of the month at midnight UTC.
func nthSunday(year int, month time.Month, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	toSunday := (7 - int(first.Weekday())) % 7
	return first.AddDate(0, 0, toSunday+(n-1)*7)
}
