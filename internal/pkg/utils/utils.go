package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseISODuration converts a GDS ISO-8601 duration to minutes.
// Example: "PT2H10M" -> 130. Returns false when the value is not of the PTnHnM form.
func ParseISODuration(duration string) (int64, bool) {
	match := isoDurationPattern.FindStringSubmatch(duration)
	if match == nil || (match[1] == "" && match[2] == "") {
		return 0, false
	}

	var h, m int64
	if match[1] != "" {
		h, _ = strconv.ParseInt(match[1], 10, 64)
	}

	if match[2] != "" {
		m, _ = strconv.ParseInt(match[2], 10, 64)
	}

	return h*60 + m, true
}

// FormatISODuration renders a GDS duration for display.
// Example: "PT2H5M" -> "2h 05m". Unparseable values are returned as is.
func FormatISODuration(duration string) string {
	if duration == "" {
		return ""
	}

	minutes, ok := ParseISODuration(duration)
	if !ok {
		return duration
	}

	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// FormatRupee formats an amount with the Indian digit grouping.
// Example: 1234567 -> "₹12,34,567"
func FormatRupee(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := strconv.FormatInt(amount, 10)

	var grouped string
	if len(str) <= 3 {
		grouped = str
	} else {
		head, tail := str[:len(str)-3], str[len(str)-3:]

		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}

		if head != "" {
			parts = append([]string{head}, parts...)
		}

		grouped = strings.Join(append(parts, tail), ",")
	}

	if negative {
		return "-₹" + grouped
	}

	return "₹" + grouped
}

// DigitsOnly strips everything but ASCII digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
