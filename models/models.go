package models

// ConvertedPrice is the result of converting a price into the target
// region's currency. It is recomputed on every request and only attached
// when the conversion actually succeeded.
type ConvertedPrice struct {
	Amount         *float64 `json:"amount"`
	Currency       string   `json:"currency"`
	Symbol         string   `json:"symbol"`
	Rate           float64  `json:"rate"`
	SourceCurrency string   `json:"sourceCurrency"`
	TargetRegion   string   `json:"targetRegion"`
	FetchedAt      string   `json:"fetchedAt"`
}

// PriceInfo is the app's primary price as read from the structured
// SoftwareApplication payload. Amount comes straight from the JSON, not
// from text heuristics.
type PriceInfo struct {
	Amount    *float64        `json:"amount"`
	Currency  *string         `json:"currency"`
	Category  *string         `json:"category"`
	Converted *ConvertedPrice `json:"converted,omitempty"`
}

// InAppItemPrice is inferred from free-form price text, so amount,
// currency and symbol are all best-effort.
type InAppItemPrice struct {
	Text      string          `json:"text"`
	Amount    *float64        `json:"amount"`
	Currency  *string         `json:"currency"`
	Symbol    *string         `json:"symbol"`
	Converted *ConvertedPrice `json:"converted,omitempty"`
}

// InAppItem is a single in-app-purchase line item.
type InAppItem struct {
	Name      string          `json:"name"`
	PriceText string          `json:"priceText"`
	Price     *InAppItemPrice `json:"price"`
}

// InAppPurchases is the flattened in-app-purchase section of a product page.
type InAppPurchases struct {
	Available bool        `json:"available"`
	Summary   *string     `json:"summary"`
	Items     []InAppItem `json:"items"`
}

// SoftwareDetails is what the product extractor pulls out of the
// software-application script tag.
type SoftwareDetails struct {
	Name  *string
	Price *PriceInfo
}

// AppPriceResponse is the JSON body returned for a successful lookup.
type AppPriceResponse struct {
	SourceURL      string          `json:"sourceUrl"`
	Region         string          `json:"region"`
	AppID          *string         `json:"appId"`
	TargetRegion   *string         `json:"targetRegion"`
	ExtractedAt    string          `json:"extractedAt"`
	Name           *string         `json:"name"`
	Price          *PriceInfo      `json:"price"`
	InAppPurchases *InAppPurchases `json:"inAppPurchases"`
}
