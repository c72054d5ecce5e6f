package scraper

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	scriptPatternMu sync.Mutex
	scriptPatterns  = map[string]*regexp.Regexp{}
)

// scriptPattern returns a cached pattern matching a script tag carrying the
// given id attribute. The id value may be double-quoted, single-quoted or
// bare, and the tag may carry any other attributes.
func scriptPattern(id string) *regexp.Regexp {
	scriptPatternMu.Lock()
	defer scriptPatternMu.Unlock()

	if re, ok := scriptPatterns[id]; ok {
		return re
	}
	re := regexp.MustCompile(fmt.Sprintf(
		`(?is)<script[^>]*id=(?:"|')?%s(?:"|')?[^>]*>(.*?)</script>`,
		regexp.QuoteMeta(id),
	))
	scriptPatterns[id] = re
	return re
}

// ExtractScriptContent pulls the inner text of the first script element
// whose id attribute matches. This is a targeted scan over known App Store
// markup, not an HTML parser. Returns false when there is no match or the
// matched body is empty after trimming.
func ExtractScriptContent(html, id string) (string, bool) {
	match := scriptPattern(id).FindStringSubmatch(html)
	if match == nil {
		return "", false
	}
	content := strings.TrimSpace(match[1])
	if content == "" {
		return "", false
	}
	return content, true
}
