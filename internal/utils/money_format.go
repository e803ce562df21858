package utils

import "github.com/shopspring/decimal"

// FormatPrice renders a monetary amount with exactly two decimal places, the
// way every textual reply and report presents prices.
func FormatPrice(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
