package model

import (
	"fmt"
	"time"
)

// Timestamps reach this code from two directions: CLI options typed by
// operators and datetime tags surfaced by the raster library. Neither is
// guaranteed to carry a zone designator, so we need lenient "multi-format"
// parsing functionality, implemented here.

// StandardTimeLayout is the preferred format when writing timestamps into documents
const StandardTimeLayout = "2006-01-02T15:04:05Z"

var assetTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseAssetTime is a drop-in replacement for time.Parse, but matching against
// multiple possible timestamp formats
func ParseAssetTime(assetTime string) (time.Time, error) {
	for _, layout := range assetTimeLayouts {
		if output, err := time.Parse(layout, assetTime); err == nil {
			return output.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", assetTime)
}

// FormatTimestamp renders a timestamp the way the emitted documents expect it
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(StandardTimeLayout)
}
