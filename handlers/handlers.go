package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"appcost/config"
	"appcost/fx"
	"appcost/models"
	"appcost/regions"
	"appcost/scraper"
)

const (
	scriptIDSoftwareApplication = "software-application"
	scriptIDServerData          = "serialized-server-data"
)

type Handlers struct {
	fetcher *scraper.PageFetcher
	fx      *fx.Client
	cfg     *config.Config
}

func NewHandlers(fetcher *scraper.PageFetcher, fxClient *fx.Client, cfg *config.Config) *Handlers {
	return &Handlers{
		fetcher: fetcher,
		fx:      fxClient,
		cfg:     cfg,
	}
}

// HealthCheck returns a simple health check response
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"service":   "appcost",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, r, http.StatusOK, response)
}

// GetAppPrice fetches an App Store product page, extracts the pricing data
// embedded in it and optionally converts prices into a target region's
// currency. This is the single endpoint of the service.
func (h *Handlers) GetAppPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		// Plain OPTIONS without preflight headers bypasses the CORS layer.
		applyCORSFallback(w, r)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	params := r.URL.Query()
	target := resolveAppStoreURL(params)
	if target == nil {
		writeError(w, r, http.StatusBadRequest, "Provide either `url` or both `appId` and `region`.")
		return
	}

	var toRegion *string
	if raw := params.Get("toregion"); raw != "" {
		lowered := strings.ToLower(raw)
		toRegion = &lowered
	}

	acceptLanguage := params.Get("acceptLanguage")
	if acceptLanguage == "" {
		acceptLanguage = h.cfg.DefaultAcceptLanguage
	}

	html, status, err := h.fetcher.FetchPage(r.Context(), target.URL, acceptLanguage)
	if err != nil {
		log.Printf("Failed to fetch product page %s: %v", target.URL, err)
		writeError(w, r, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch %s", target.URL))
		return
	}
	if status < 200 || status > 299 {
		writeError(w, r, status, fmt.Sprintf("App Store responded with %d for %s", status, target.URL))
		return
	}

	var software *models.SoftwareDetails
	if payload, ok := scraper.ExtractScriptContent(html, scriptIDSoftwareApplication); ok {
		software = scraper.ParseSoftwareApplication(payload)
	}

	var iap *models.InAppPurchases
	if payload, ok := scraper.ExtractScriptContent(html, scriptIDServerData); ok {
		iap = scraper.ParseInAppPurchases(payload)
	}

	// The FX cache lives for exactly one request; concurrent requests never
	// share rates.
	reqCache := fx.NewRequestCache()

	var name *string
	var price *models.PriceInfo
	var fallbackCurrency *string
	if software != nil {
		name = software.Name
		price = software.Price
		if software.Price != nil {
			fallbackCurrency = software.Price.Currency
		}
	}

	price = h.enrichPrice(r, price, toRegion, reqCache)
	iap = h.enrichInAppPurchases(r, iap, toRegion, reqCache, fallbackCurrency)

	response := models.AppPriceResponse{
		SourceURL:      target.URL,
		Region:         target.Region,
		AppID:          target.AppID,
		TargetRegion:   toRegion,
		ExtractedAt:    time.Now().UTC().Format(time.RFC3339),
		Name:           name,
		Price:          price,
		InAppPurchases: iap,
	}
	writeJSON(w, r, http.StatusOK, response)
}

// MethodNotAllowed rejects anything other than GET and OPTIONS.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "Only GET is supported")
}

// enrichPrice attaches a converted sub-object to the main price when a
// recognized target region was requested and the conversion succeeds. On
// any failure the price is returned untouched.
func (h *Handlers) enrichPrice(r *http.Request, price *models.PriceInfo, toRegion *string, reqCache *fx.RequestCache) *models.PriceInfo {
	if price == nil || price.Amount == nil || price.Currency == nil || toRegion == nil {
		return price
	}
	targetMeta, ok := regions.Lookup(*toRegion)
	if !ok {
		return price
	}

	conversion := h.fx.Convert(r.Context(), *price.Amount, *price.Currency, targetMeta.Currency, reqCache)
	if conversion == nil {
		return price
	}

	enriched := *price
	enriched.Converted = convertedPrice(conversion, targetMeta, *price.Currency, *toRegion)
	return &enriched
}

// enrichInAppPurchases converts every item concurrently. Items lacking a
// detected currency borrow the main price's currency before converting;
// bare numbers in IAP text rarely carry one.
func (h *Handlers) enrichInAppPurchases(r *http.Request, iap *models.InAppPurchases, toRegion *string, reqCache *fx.RequestCache, fallbackCurrency *string) *models.InAppPurchases {
	if iap == nil {
		return nil
	}

	var targetMeta *regions.Meta
	if toRegion != nil {
		if meta, ok := regions.Lookup(*toRegion); ok {
			targetMeta = &meta
		}
	}

	enriched := *iap
	enriched.Items = make([]models.InAppItem, len(iap.Items))

	var wg sync.WaitGroup
	for i, item := range iap.Items {
		wg.Add(1)
		go func(i int, item models.InAppItem) {
			defer wg.Done()
			item.Price = normalizeItemCurrency(item.Price, fallbackCurrency)
			enriched.Items[i] = item

			price := item.Price
			if price == nil || price.Amount == nil || price.Currency == nil || targetMeta == nil {
				return
			}
			conversion := h.fx.Convert(r.Context(), *price.Amount, *price.Currency, targetMeta.Currency, reqCache)
			if conversion == nil {
				return
			}
			withConversion := *price
			withConversion.Converted = convertedPrice(conversion, *targetMeta, *price.Currency, *toRegion)
			enriched.Items[i].Price = &withConversion
		}(i, item)
	}
	wg.Wait()

	return &enriched
}

// normalizeItemCurrency fills in a missing currency from the fallback,
// along with that currency's canonical symbol when the text gave none.
func normalizeItemCurrency(price *models.InAppItemPrice, fallbackCurrency *string) *models.InAppItemPrice {
	if price == nil || price.Currency != nil || fallbackCurrency == nil {
		return price
	}

	code := strings.ToUpper(*fallbackCurrency)
	normalized := *price
	normalized.Currency = &code
	if normalized.Symbol == nil {
		if symbol, ok := regions.SymbolFor(code); ok {
			normalized.Symbol = &symbol
		}
	}
	return &normalized
}

func convertedPrice(conversion *fx.Conversion, targetMeta regions.Meta, sourceCurrency, targetRegion string) *models.ConvertedPrice {
	amount := fx.Round2(conversion.Amount)
	return &models.ConvertedPrice{
		Amount:         &amount,
		Currency:       targetMeta.Currency,
		Symbol:         targetMeta.Symbol,
		Rate:           conversion.Rate,
		SourceCurrency: sourceCurrency,
		TargetRegion:   targetRegion,
		FetchedAt:      conversion.FetchedAt,
	}
}

// resolvedURL is the outcome of the two addressing modes: an explicit App
// Store URL, or an appId+region pair the URL is constructed from.
type resolvedURL struct {
	URL    string
	Region string
	AppID  *string
}

var appIDPattern = regexp.MustCompile(`(?i)id(\d+)`)

// resolveAppStoreURL resolves the product page address from the query
// string. `url` takes precedence; a malformed `url` fails the whole
// resolution even when appId is also present.
func resolveAppStoreURL(params url.Values) *resolvedURL {
	if explicit := params.Get("url"); explicit != "" {
		parsed, err := url.Parse(explicit)
		if err != nil || !parsed.IsAbs() {
			return nil
		}
		region, appID := deriveMetaFromURL(parsed)
		return &resolvedURL{URL: parsed.String(), Region: region, AppID: appID}
	}

	appID := params.Get("appId")
	if appID == "" {
		appID = params.Get("id")
	}
	if appID == "" {
		return nil
	}

	region := strings.ToLower(params.Get("region"))
	if region == "" {
		region = "us"
	}
	name := params.Get("name")
	if name == "" {
		name = "app"
	}

	constructed := fmt.Sprintf("https://apps.apple.com/%s/app/%s/id%s", region, slugify(name), appID)
	return &resolvedURL{URL: constructed, Region: region, AppID: &appID}
}

// deriveMetaFromURL pulls the region (first path segment) and numeric app
// id out of an explicit App Store URL.
func deriveMetaFromURL(u *url.URL) (string, *string) {
	region := "us"
	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" {
			region = segment
			break
		}
	}

	var appID *string
	if match := appIDPattern.FindStringSubmatch(u.Path); match != nil {
		appID = &match[1]
	}
	return region, appID
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns an app name into the URL slug the App Store expects.
func slugify(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "app"
	}
	return slug
}
