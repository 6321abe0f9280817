// Copyright SilloVV, 2026. All rights reserved.

package fetch

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDate renders an upstream date value as a calendar date. The API
// mixes epoch-millisecond timestamps (as numbers or all-digit strings)
// with ISO-8601 strings; anything else passes through in its literal
// string form. Malformed numeric strings fall through silently to the
// literal branch.
func FormatDate(v any) string {
	switch d := v.(type) {
	case float64:
		return epochMillisToDate(int64(d))
	case int64:
		return epochMillisToDate(d)
	case int:
		return epochMillisToDate(int64(d))
	case string:
		if isDigits(d) {
			if ms, err := strconv.ParseInt(d, 10, 64); err == nil {
				return epochMillisToDate(ms)
			}
		}
		if i := strings.IndexByte(d, 'T'); i >= 0 {
			return d[:i]
		}
		return d
	default:
		return fmt.Sprintf("%v", v)
	}
}

func epochMillisToDate(ms int64) string {
	return time.Unix(ms/1000, 0).UTC().Format("2006-01-02")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
