package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyStripper = strings.NewReplacer(",", "", "$", "", "€", "", "£", "")
	fundingPattern   = regexp.MustCompile(`^(\d+(?:\.\d*)?|\.\d+)\s*([KMBkmb])?$`)
)

var suffixMultiplier = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// ParseFunding converts a raw funding cell ("$2.5M", "750 K", "1.2b",
// "1,250,000", an already-numeric value) into USD. Returns nil when the
// value is missing or the cleaned text does not fully match the
// number-plus-optional-suffix shape; malformed strings are never
// partially recovered.
func ParseFunding(raw any) *float64 {
	if raw == nil {
		return nil
	}

	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case float64:
		return FloatPtr(v)
	case float32:
		return FloatPtr(float64(v))
	case int:
		return FloatPtr(float64(v))
	case int64:
		return FloatPtr(float64(v))
	default:
		text = fmt.Sprintf("%v", v)
	}

	text = strings.TrimSpace(currencyStripper.Replace(text))
	m := fundingPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	number, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}

	multiplier := 1.0
	if m[2] != "" {
		multiplier = suffixMultiplier[strings.ToUpper(m[2])]
	}
	return FloatPtr(number * multiplier)
}

// FormatFunding renders a USD amount for the report: "$1.2B", "$12.5M",
// "$750K", "$980". A nil amount renders as the empty string. The
// rendering is lossy (one decimal for M/B) and one-way; it is never fed
// back into ParseFunding.
func FormatFunding(usd *float64) string {
	if usd == nil {
		return ""
	}
	v := *usd
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.0fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
