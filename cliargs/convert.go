package cliargs

import (
	"encoding"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Convert turns s into a T. Integers accept the 0x, 0o and 0b prefixes,
// booleans also accept yes/no and on/off, time.Duration accepts Go syntax
// plus "1d", "2w", "1M", "1Y", "MM:SS" and "HH:MM:SS", and time.Time
// accepts any layout dateparse recognizes (local time zone).
func Convert[T any](s string) (T, bool) {
	var out T
	s = strings.TrimSpace(s)

	var ok bool
	switch p := any(&out).(type) {
	case *string:
		*p, ok = s, true
	case *bool:
		*p, ok = parseBool(s)
	case *time.Duration:
		*p, ok = parseDuration(s)
	case *time.Time:
		v, err := dateparse.ParseLocal(s)
		*p, ok = v, err == nil
	case encoding.TextUnmarshaler:
		ok = p.UnmarshalText([]byte(s)) == nil
	case *int:
		ok = convertInt(s, strconv.IntSize, p)
	case *int8:
		ok = convertInt(s, 8, p)
	case *int16:
		ok = convertInt(s, 16, p)
	case *int32:
		ok = convertInt(s, 32, p)
	case *int64:
		ok = convertInt(s, 64, p)
	case *uint:
		ok = convertUint(s, strconv.IntSize, p)
	case *uint8:
		ok = convertUint(s, 8, p)
	case *uint16:
		ok = convertUint(s, 16, p)
	case *uint32:
		ok = convertUint(s, 32, p)
	case *uint64:
		ok = convertUint(s, 64, p)
	case *float32:
		v, err := strconv.ParseFloat(s, 32)
		*p, ok = float32(v), err == nil
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		*p, ok = v, err == nil
	}
	return out, ok
}

// ConvertOr is Convert with a fallback for values that do not convert.
func ConvertOr[T any](s string, fallback T) T {
	if v, ok := Convert[T](s); ok {
		return v
	}
	return fallback
}

func convertInt[T ~int | ~int8 | ~int16 | ~int32 | ~int64](s string, bits int, p *T) bool {
	v, err := strconv.ParseInt(s, 0, bits)
	*p = T(v)
	return err == nil
}

func convertUint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](s string, bits int, p *T) bool {
	v, err := strconv.ParseUint(s, 0, bits)
	*p = T(v)
	return err == nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	}
	v, err := strconv.ParseBool(s)
	return v, err == nil
}

// parseDuration accepts "00:30" (30s), "01:30:15", "1d", "1w", "1M" (30
// days), "1Y" (365 days) and anything time.ParseDuration does.
func parseDuration(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	if n := strings.Count(s, ":"); n > 0 {
		return parseColonDuration(s, n)
	}
	if d, ok := parseExtendedDuration(s); ok {
		return d, true
	}
	d, err := time.ParseDuration(strings.ReplaceAll(s, " ", ""))
	return d, err == nil
}

// parseColonDuration reads "MM:SS" or "HH:MM:SS".
func parseColonDuration(s string, colons int) (time.Duration, bool) {
	if colons > 2 {
		return 0, false
	}
	units := []time.Duration{time.Minute, time.Second}
	if colons == 2 {
		units = []time.Duration{time.Hour, time.Minute, time.Second}
	}

	var total time.Duration
	for i, field := range strings.Split(s, ":") {
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return 0, false
		}
		total += time.Duration(n) * units[i]
	}
	return total, true
}

// parseExtendedDuration reads a count followed by d, w, M (month) or y.
// A lowercase m is minutes and left to time.ParseDuration.
func parseExtendedDuration(s string) (time.Duration, bool) {
	if len(s) < 2 {
		return 0, false
	}

	var unit time.Duration
	switch last := s[len(s)-1]; last {
	case 'd', 'D':
		unit = 24 * time.Hour
	case 'w', 'W':
		unit = 7 * 24 * time.Hour
	case 'M':
		unit = 30 * 24 * time.Hour
	case 'y', 'Y':
		unit = 365 * 24 * time.Hour
	default:
		return 0, false
	}

	n, err := strconv.ParseUint(s[:len(s)-1], 10, 32)
	if err != nil {
		return 0, false
	}
	return time.Duration(n) * unit, true
}
