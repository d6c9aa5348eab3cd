package gefs

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stactools-packages/noaa-gefs/model"
)

// parseTagBlock splits an embedded key=value tag block such as
// "CENTER=7(US-NCEP) SUBCENTER=2 REF_TIME=2022-01-21T00:00:00Z" into a map.
// Tokens without a `=` are ignored.
func parseTagBlock(block string) map[string]string {
	values := map[string]string{}
	for _, token := range strings.Fields(block) {
		parts := strings.SplitN(token, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// codedLabel extracts the human-readable label from a coded tag value like
// "7(US-NCEP)" or "0(Meteorological)"; plain values pass through unchanged.
func codedLabel(value string) string {
	open := strings.Index(value, "(")
	if open < 0 || !strings.HasSuffix(value, ")") {
		return value
	}
	return value[open+1 : len(value)-1]
}

// parseGribSeconds converts a forecast offset tag like "21600 sec" (or a
// bare number) into a duration.
func parseGribSeconds(value string) (time.Duration, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), " sec")
	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("Forecast offset could not be parsed as seconds: `%s`", value)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// parseGribTime parses the two datetime encodings the raster library emits
// for GRIB reference/valid time tags: RFC 3339 and epoch "sec UTC".
func parseGribTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if strings.HasSuffix(trimmed, "sec UTC") {
		epochStr := strings.TrimSpace(strings.TrimSuffix(trimmed, "sec UTC"))
		epoch, err := strconv.ParseInt(epochStr, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("Epoch timestamp could not be parsed: `%s`", value)
		}
		return time.Unix(epoch, 0).UTC(), nil
	}
	return model.ParseAssetTime(trimmed)
}

// parseGribUnit strips the bracket notation from a unit tag: "[K]" -> "K"
func parseGribUnit(value string) string {
	return strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
}

// isoDuration renders a duration as an ISO 8601 duration string (PT6H,
// PT1H30M, P16D). Negative durations are not expected here.
func isoDuration(d time.Duration) string {
	total := int64(d.Seconds())
	if total == 0 {
		return "PT0S"
	}

	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	out := "P"
	if days > 0 {
		out += fmt.Sprintf("%dD", days)
	}
	if hours > 0 || minutes > 0 || seconds > 0 {
		out += "T"
		if hours > 0 {
			out += fmt.Sprintf("%dH", hours)
		}
		if minutes > 0 {
			out += fmt.Sprintf("%dM", minutes)
		}
		if seconds > 0 {
			out += fmt.Sprintf("%dS", seconds)
		}
	}
	return out
}
