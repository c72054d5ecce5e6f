package regions

import (
	"sort"
	"strings"
)

// Meta holds the currency information for one storefront region.
type Meta struct {
	Currency string
	Symbol   string
}

var (
	byRegion         map[string]Meta
	currencyCodes    []string
	currencyCodeSet  map[string]bool
	currencySymbols  map[string]string
	symbolCurrencies map[string]string
	symbolsByLength  []string
)

func init() {
	buildIndexes(regionSpecs)
}

// buildIndexes derives the lookup tables from the static region list.
// Currency->symbol and symbol->currency keep the first region seen, so the
// result is deterministic for a fixed table order.
func buildIndexes(specs []regionSpec) {
	byRegion = make(map[string]Meta, len(specs))
	currencyCodeSet = make(map[string]bool)
	currencySymbols = make(map[string]string)
	symbolCurrencies = make(map[string]string)
	currencyCodes = currencyCodes[:0]
	symbolsByLength = symbolsByLength[:0]

	for _, spec := range specs {
		code := strings.ToLower(spec.code)
		currency := strings.ToUpper(spec.currency)

		byRegion[code] = Meta{Currency: currency, Symbol: spec.symbol}

		if !currencyCodeSet[currency] {
			currencyCodeSet[currency] = true
			currencyCodes = append(currencyCodes, currency)
		}
		if _, ok := currencySymbols[currency]; !ok {
			currencySymbols[currency] = spec.symbol
		}
		if _, ok := symbolCurrencies[spec.symbol]; !ok {
			symbolCurrencies[spec.symbol] = currency
			symbolsByLength = append(symbolsByLength, spec.symbol)
		}
	}

	// Longest symbols first so that e.g. "HK$" is tried before "$".
	sort.SliceStable(symbolsByLength, func(i, j int) bool {
		return len(symbolsByLength[i]) > len(symbolsByLength[j])
	})
}

// Lookup returns the currency metadata for a region code, case-insensitively.
func Lookup(regionCode string) (Meta, bool) {
	meta, ok := byRegion[strings.ToLower(regionCode)]
	return meta, ok
}

// CurrencyCodes returns every known currency code, deduplicated, in the
// order the regions table introduces them.
func CurrencyCodes() []string {
	return currencyCodes
}

// IsCurrencyCode reports whether code (uppercased) is a known currency.
func IsCurrencyCode(code string) bool {
	return currencyCodeSet[strings.ToUpper(code)]
}

// SymbolFor returns the canonical display symbol for a currency code.
func SymbolFor(currency string) (string, bool) {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	return symbol, ok
}

// CurrencyForSymbol returns the currency mapped to a display symbol.
func CurrencyForSymbol(symbol string) (string, bool) {
	currency, ok := symbolCurrencies[symbol]
	return currency, ok
}

// SymbolsByLength returns all known symbols, longest first, for use when
// scanning free-form price text.
func SymbolsByLength() []string {
	return symbolsByLength
}
