package scraper

import "testing"

func TestParseNumericAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1,234.56", 1234.56},
		{"1.234,56", 1234.56},
		{"1234", 1234},
		{"$4.99", 4.99},
		{"€ 9,99", 9.99},
		{"Rp89.000", 89000},
		{"₫230.000", 230000},
		{"1 234,50 kr", 1234.5},
		{"¥1,200", 1200},
		{"0.99", 0.99},
		{"-4.99", -4.99},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseNumericAmount(tt.in)
			if got == nil {
				t.Fatalf("ParseNumericAmount(%q) = nil, want %v", tt.in, tt.want)
			}
			if *got != tt.want {
				t.Errorf("ParseNumericAmount(%q) = %v, want %v", tt.in, *got, tt.want)
			}
		})
	}
}

func TestParseNumericAmountNoNumber(t *testing.T) {
	for _, in := range []string{"", "free", "Gratis", "-", "...", ",,"} {
		if got := ParseNumericAmount(in); got != nil {
			t.Errorf("ParseNumericAmount(%q) = %v, want nil", in, *got)
		}
	}
}

func TestDetectCurrencyCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4.99 USD", "USD"},
		{"USD 4.99", "USD"},
		{"EUR9,99", "EUR"},
		{"€9,99", "EUR"},
		{"Rp89.000", "IDR"},
		{"HK$38.00", "HKD"},
		{"R$ 19,90", "BRL"},
		// Plain "$" maps to the first region using it, Argentina.
		{"$4.99", "ARS"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := DetectCurrencyCode(tt.in)
			if !ok {
				t.Fatalf("DetectCurrencyCode(%q) found nothing, want %q", tt.in, tt.want)
			}
			if got != tt.want {
				t.Errorf("DetectCurrencyCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectCurrencyCodeNone(t *testing.T) {
	if got, ok := DetectCurrencyCode("free"); ok {
		t.Errorf("DetectCurrencyCode(free) = %q, want none", got)
	}
}

func TestDetectCurrencySymbol(t *testing.T) {
	eur := "EUR"
	// Longest symbol wins: HK$ before $.
	if got, ok := DetectCurrencySymbol("HK$38.00", nil); !ok || got != "HK$" {
		t.Errorf("DetectCurrencySymbol(HK$38.00) = %q, want HK$", got)
	}
	// No symbol in text: fall back to the detected currency's canonical one.
	if got, ok := DetectCurrencySymbol("9,99", &eur); !ok || got != "€" {
		t.Errorf("DetectCurrencySymbol(9,99) = %q, want €", got)
	}
	// Single-letter symbols match anywhere in the text; the dalasi's "D"
	// hits before the USD fallback is consulted.
	usd := "USD"
	if got, ok := DetectCurrencySymbol("4.99 USD", &usd); !ok || got != "D" {
		t.Errorf("DetectCurrencySymbol(4.99 USD) = %q, want D", got)
	}
	if _, ok := DetectCurrencySymbol("free", nil); ok {
		t.Error("DetectCurrencySymbol(free) should find nothing")
	}
}

func TestParseItemPrice(t *testing.T) {
	price := ParseItemPrice("€ 9,99")
	if price.Text != "€ 9,99" {
		t.Errorf("Text = %q, want the original string", price.Text)
	}
	if price.Amount == nil || *price.Amount != 9.99 {
		t.Errorf("Amount = %v, want 9.99", price.Amount)
	}
	if price.Currency == nil || *price.Currency != "EUR" {
		t.Errorf("Currency = %v, want EUR", price.Currency)
	}
	if price.Symbol == nil || *price.Symbol != "€" {
		t.Errorf("Symbol = %v, want €", price.Symbol)
	}
}

func TestParseItemPriceBareNumber(t *testing.T) {
	price := ParseItemPrice("3.99")
	if price.Amount == nil || *price.Amount != 3.99 {
		t.Errorf("Amount = %v, want 3.99", price.Amount)
	}
	if price.Currency != nil {
		t.Errorf("Currency = %q, want nil for a bare number", *price.Currency)
	}
}

func TestParseItemPriceWhitespaceOnly(t *testing.T) {
	price := ParseItemPrice("   ")
	if price.Amount != nil || price.Currency != nil || price.Symbol != nil {
		t.Errorf("whitespace-only text should yield all nils, got %+v", price)
	}
	if price.Text != "   " {
		t.Errorf("Text = %q, want the untrimmed original", price.Text)
	}
}
