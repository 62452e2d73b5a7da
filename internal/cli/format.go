// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/runway/internal/model"
)

// FormatMoney formats an amount with the given currency symbol,
// e.g. 1234.5 -> "1,234.50 €".
func FormatMoney(amount float64, currency string) string {
	s := formatGrouped(amount)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatSignedMoney is FormatMoney with an explicit leading sign on
// positive amounts, for flow columns.
func FormatSignedMoney(amount float64, currency string) string {
	if amount > 0 {
		return "+" + FormatMoney(amount, currency)
	}
	return FormatMoney(amount, currency)
}

// FormatRunway renders runway days, or "n/a" when the balance is not
// burning down.
func FormatRunway(days *int) string {
	if days == nil {
		return "n/a"
	}
	return fmt.Sprintf("%dd", *days)
}

// FormatDate renders a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

// FormatMonth renders a month bucket, e.g. "2024-01".
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// formatGrouped renders an amount with two decimals and thousands
// separators on the integer part.
func formatGrouped(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	grouped := FormatNumber(mustParseInt(intPart))
	out := grouped + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

func mustParseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
