package scraper

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"appcost/models"
)

// ParseSoftwareApplication extracts the app name and primary price from the
// raw text of the "software-application" script tag. Returns nil when the
// payload is empty, is not valid JSON, or contains no SoftwareApplication
// node anywhere in the tree.
func ParseSoftwareApplication(payload string) *models.SoftwareDetails {
	if payload == "" {
		return nil
	}

	var data any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil
	}

	node := FindNode(data, isSoftwareApplication)
	if node == nil {
		return nil
	}

	details := &models.SoftwareDetails{}
	if name, ok := node["name"].(string); ok {
		details.Name = &name
	}

	offer := firstOffer(node["offers"])
	if offer == nil {
		return details
	}

	price := &models.PriceInfo{
		Amount: offerAmount(offer["price"]),
	}
	if currency, ok := offer["priceCurrency"].(string); ok {
		price.Currency = &currency
	}
	if category, ok := offer["category"].(string); ok {
		price.Category = &category
	}
	details.Price = price
	return details
}

// isSoftwareApplication matches an explicit schema.org type tag, or falls
// back to the shape heuristic of a node carrying both name and offers.
func isSoftwareApplication(node map[string]any) bool {
	if t, ok := node["@type"].(string); ok && t == "SoftwareApplication" {
		return true
	}
	return truthy(node["name"]) && truthy(node["offers"])
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

// firstOffer normalizes the offers field, which appears as either a single
// object or an array. An array contributes only its first element.
func firstOffer(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case []any:
		if len(t) > 0 {
			if offer, ok := t[0].(map[string]any); ok {
				return offer
			}
		}
	}
	return nil
}

// offerAmount accepts a numeric price directly. String prices have every
// character except digits and dots stripped before parsing, which drops
// thousands separators and currency marks. A comma-decimal string like
// "4,99" therefore parses as 499; that matches the upstream payloads seen
// so far, where structured offer prices always use dot decimals.
func offerAmount(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		var b strings.Builder
		for _, r := range t {
			if (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		value, err := strconv.ParseFloat(b.String(), 64)
		if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
			return nil
		}
		return &value
	}
	return nil
}
