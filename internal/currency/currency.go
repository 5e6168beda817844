// internal/currency/currency.go
package currency

import "strings"

// supported is a curated allow-list of common ISO-4217 alphabetic codes.
// It is deliberately not the full ISO table; extend it as wallets need.
var supported = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "CHF": {},
	"CAD": {}, "AUD": {}, "NZD": {}, "CNY": {}, "HKD": {},
	"SGD": {}, "SEK": {}, "NOK": {}, "DKK": {}, "PLN": {},
	"CZK": {}, "HUF": {}, "RON": {}, "BGN": {}, "TRY": {},
	"ILS": {}, "AED": {}, "SAR": {}, "INR": {}, "KRW": {},
	"THB": {}, "MXN": {}, "BRL": {}, "ZAR": {}, "UAH": {},
}

// IsValid reports whether code names a supported currency.
// The check is case-insensitive.
func IsValid(code string) bool {
	_, ok := supported[strings.ToUpper(code)]
	return ok
}
