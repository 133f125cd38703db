package utils

import "fmt"

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatINR renders an amount with the rupee sign for documents.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sINR %.2f", sign, amount)
}
