package entity

import (
	"strconv"
)

// AmountInCentsToString converts integer amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 0 becomes "0.00"
func AmountInCentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	formatted := amountStr[:decimalPos] + "." + amountStr[decimalPos:]
	if isNegative {
		return "-" + formatted
	}
	return formatted
}
