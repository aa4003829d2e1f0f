package payroll

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupee = "₹"

// en-IN carries the lakh/crore pattern #,##,##0.###.
var inPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders amount with the rupee sign and Indian digit grouping,
// e.g. 1234567.5 -> ₹12,34,567.50.
func FormatINR(amount float64, decimals int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return rupee + "0"
	}
	if decimals < 0 {
		decimals = 0
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + rupee + inPrinter.Sprint(number.Decimal(amount, number.Scale(decimals)))
}
