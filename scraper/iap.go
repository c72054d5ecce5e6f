package scraper

import (
	"encoding/json"
	"strings"

	"appcost/models"
)

const (
	iapSectionTitle = "In-App Purchases"
	unnamedItem     = "Unnamed item"
)

// ParseInAppPurchases extracts the in-app-purchase section from the raw
// text of the "serialized-server-data" script tag. Many apps simply have
// no such section; that case, like any parse failure, returns nil.
func ParseInAppPurchases(payload string) *models.InAppPurchases {
	if payload == "" {
		return nil
	}

	var data any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil
	}

	section := FindNode(data, func(node map[string]any) bool {
		title, ok := node["title"].(string)
		return ok && title == iapSectionTitle
	})
	if section == nil {
		return nil
	}

	result := &models.InAppPurchases{Items: []models.InAppItem{}}
	if summary, ok := section["summary"].(string); ok {
		result.Summary = &summary
		result.Available = strings.ToLower(summary) == "yes"
	}

	items, _ := section["items"].([]any)
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		pairs, ok := obj["textPairs"].([]any)
		if !ok {
			continue
		}
		for _, pair := range pairs {
			result.Items = append(result.Items, iapItemFromPair(pair))
		}
	}
	return result
}

// iapItemFromPair builds one line item from a [name, priceText] tuple.
func iapItemFromPair(pair any) models.InAppItem {
	var name, priceText string
	if tuple, ok := pair.([]any); ok {
		if len(tuple) > 0 {
			name, _ = tuple[0].(string)
		}
		if len(tuple) > 1 {
			priceText, _ = tuple[1].(string)
		}
	}

	item := models.InAppItem{Name: name, PriceText: priceText}
	if strings.TrimSpace(item.Name) == "" {
		item.Name = unnamedItem
	}
	if priceText != "" {
		item.Price = ParseItemPrice(priceText)
	}
	return item
}
