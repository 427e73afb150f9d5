// Package format renders numbers and text for the book's tables and
// figure captions.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// WithCommas renders n with thousands separators: 1234567 -> "1,234,567".
func WithCommas(n int64) string {
	return printer.Sprintf("%d", n)
}

// WithCommasFloat rounds f to the nearest integer and renders it with
// thousands separators.
func WithCommasFloat(f float64) string {
	return printer.Sprintf("%.0f", f)
}

// ParseCommas parses a comma-grouped integer back to its value, so
// ParseCommas(WithCommas(n)) == n.
func ParseCommas(s string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, eris.New("format: empty number")
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "format: parse %q", s)
	}
	return n, nil
}

// Percent renders a decimal fraction as a percentage with two decimal
// places: 0.1524 -> "15.24%".
func Percent(fraction float64) string {
	return PercentN(fraction, 2)
}

// PercentN renders a decimal fraction as a percentage with the given
// number of decimal places.
func PercentN(fraction float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, fraction*100)
}

// HumanCount compacts a count for captions: 1200000 -> "1.2M".
func HumanCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}
