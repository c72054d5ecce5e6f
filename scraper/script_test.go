package scraper

import "testing"

func TestExtractScriptContentQuotingStyles(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"double quotes", `<html><script type="application/json" id="payload">{"a":1}</script></html>`},
		{"single quotes", `<html><script id='payload' type='application/json'>{"a":1}</script></html>`},
		{"no quotes", `<html><script id=payload>{"a":1}</script></html>`},
		{"extra attributes", `<html><script data-x="y" id="payload" defer>{"a":1}</script></html>`},
		{"surrounding whitespace", "<script id=\"payload\">\n  {\"a\":1}\n</script>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, ok := ExtractScriptContent(tt.html, "payload")
			if !ok {
				t.Fatal("expected a match")
			}
			if content != `{"a":1}` {
				t.Errorf("content = %q, want %q", content, `{"a":1}`)
			}
		})
	}
}

func TestExtractScriptContentNoMatch(t *testing.T) {
	if _, ok := ExtractScriptContent(`<script id="other">x</script>`, "payload"); ok {
		t.Error("expected no match for a different id")
	}
	if _, ok := ExtractScriptContent("", "payload"); ok {
		t.Error("expected no match for empty html")
	}
}

func TestExtractScriptContentEmptyBody(t *testing.T) {
	if _, ok := ExtractScriptContent(`<script id="payload">   </script>`, "payload"); ok {
		t.Error("whitespace-only body should report no content")
	}
}

func TestExtractScriptContentFirstMatchWins(t *testing.T) {
	html := `<script id="payload">first</script><script id="payload">second</script>`
	content, ok := ExtractScriptContent(html, "payload")
	if !ok || content != "first" {
		t.Errorf("content = %q, ok = %v, want first match", content, ok)
	}
}
