package scraper

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"appcost/models"
	"appcost/regions"
)

var currencyCodeToken = regexp.MustCompile(`\b[A-Z]{3}\b`)

// ParseItemPrice interprets a free-form price string of unknown locale
// formatting, e.g. "$4.99", "€ 9,99" or "Rp89.000". Everything here is
// heuristic: the returned amount, currency and symbol are each nil when
// the text gives no usable signal.
func ParseItemPrice(text string) *models.InAppItemPrice {
	trimmed := strings.TrimSpace(text)
	price := &models.InAppItemPrice{Text: text}
	if trimmed == "" {
		return price
	}

	price.Amount = ParseNumericAmount(trimmed)
	if currency, ok := DetectCurrencyCode(trimmed); ok {
		price.Currency = &currency
	}
	if symbol, ok := DetectCurrencySymbol(trimmed, price.Currency); ok {
		price.Symbol = &symbol
	}
	return price
}

// ParseNumericAmount extracts a decimal amount from price text. Only
// digits, commas, dots and minus signs are kept; the decimal separator is
// then disambiguated by position (see decimalSeparator). Returns nil when
// no number can be recovered.
func ParseNumericAmount(text string) *float64 {
	cleaned := keepRunes(text, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-'
	})
	if cleaned == "" {
		return nil
	}

	var normalized string
	switch decimalSeparator(cleaned) {
	case ',':
		// Dots are thousands separators: 1.234,56 -> 1234.56
		normalized = strings.ReplaceAll(cleaned, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	case '.':
		// Commas are thousands separators: 1,234.56 -> 1234.56
		normalized = strings.ReplaceAll(cleaned, ",", "")
	default:
		// No convincing decimal separator; treat every comma and dot as
		// grouping noise: Rp89.000 -> 89000
		normalized = keepRunes(cleaned, func(r rune) bool {
			return (r >= '0' && r <= '9') || r == '-'
		})
	}

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return nil
	}
	return &value
}

// decimalSeparator decides whether comma or dot acts as the decimal
// separator. A candidate is plausible when its last occurrence has one or
// two characters after it, the usual cent grouping. When both are
// plausible the one appearing later in the string wins. Returns 0 when
// neither convinces.
func decimalSeparator(value string) rune {
	lastComma := strings.LastIndex(value, ",")
	lastDot := strings.LastIndex(value, ".")

	commaValid := lastComma != -1 && trailing(value, lastComma) >= 1 && trailing(value, lastComma) <= 2
	dotValid := lastDot != -1 && trailing(value, lastDot) >= 1 && trailing(value, lastDot) <= 2

	if commaValid && (!dotValid || lastComma > lastDot) {
		return ','
	}
	if dotValid && (!commaValid || lastDot > lastComma) {
		return '.'
	}
	return 0
}

func trailing(value string, idx int) int {
	return len(value) - idx - 1
}

func keepRunes(s string, keep func(rune) bool) string {
	var b strings.Builder
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectCurrencyCode finds a currency code in price text. It prefers a
// word-bounded three-letter token, then any known code appearing as a
// substring, then a known currency symbol mapped back to its code.
func DetectCurrencyCode(text string) (string, bool) {
	upper := strings.ToUpper(text)

	if token := currencyCodeToken.FindString(upper); token != "" && regions.IsCurrencyCode(token) {
		return token, true
	}

	for _, code := range regions.CurrencyCodes() {
		if strings.Contains(upper, code) {
			return code, true
		}
	}

	for _, symbol := range regions.SymbolsByLength() {
		if symbol != "" && strings.Contains(text, symbol) {
			if currency, ok := regions.CurrencyForSymbol(symbol); ok {
				return currency, true
			}
		}
	}
	return "", false
}

// DetectCurrencySymbol picks the display symbol out of price text, trying
// known symbols longest-first so "HK$" is not mistaken for "$". Falls back
// to the detected currency's canonical symbol.
func DetectCurrencySymbol(text string, currency *string) (string, bool) {
	for _, symbol := range regions.SymbolsByLength() {
		if symbol != "" && strings.Contains(text, symbol) {
			return symbol, true
		}
	}
	if currency != nil {
		if symbol, ok := regions.SymbolFor(*currency); ok {
			return symbol, true
		}
	}
	return "", false
}
