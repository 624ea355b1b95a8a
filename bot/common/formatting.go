package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatCount formats a count with thousand separators
func FormatCount(n int64) string {
	str := fmt.Sprintf("%d", n)
	sign := ""
	if strings.HasPrefix(str, "-") {
		sign, str = "-", str[1:]
	}

	digits := len(str)
	if digits <= 3 {
		return sign + str
	}

	var result strings.Builder
	result.WriteString(sign)
	for i, digit := range str {
		if i > 0 && (digits-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatDollars formats a whole-dollar amount
func FormatDollars(amount int64) string {
	if amount < 0 {
		return "-$" + FormatCount(-amount)
	}
	return "$" + FormatCount(amount)
}

// FormatTrajectory renders a balance path such as "$5 → $10 → $0".
// Long paths keep their first and last points around an ellipsis.
func FormatTrajectory(balances []int64, maxPoints int) string {
	if len(balances) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(balances))
	if maxPoints < 2 || len(balances) <= maxPoints {
		for _, b := range balances {
			parts = append(parts, FormatDollars(b))
		}
		return strings.Join(parts, " → ")
	}

	head := maxPoints / 2
	tail := maxPoints - head
	for _, b := range balances[:head] {
		parts = append(parts, FormatDollars(b))
	}
	parts = append(parts, "…")
	for _, b := range balances[len(balances)-tail:] {
		parts = append(parts, FormatDollars(b))
	}
	return strings.Join(parts, " → ")
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// Truncate shortens s to at most limit bytes, marking the cut with an ellipsis
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 3 {
		return s[:limit]
	}
	return s[:limit-3] + "..."
}
