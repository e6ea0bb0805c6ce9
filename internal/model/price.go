package model

import "strconv"

// FormatPrice renders a price with exactly two decimal places. FormatFloat
// rounds half-to-even, so 125.125 renders as "125.12".
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

// ParsePrice parses a client- or spreadsheet-supplied price.
func ParsePrice(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
