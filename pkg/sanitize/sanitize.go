// Package sanitize strips unsafe markup from rich-text submissions before
// they reach storage.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Clean sanitises rich-text HTML, keeping user-generated-content elements
// plus the class hooks the editor emits.
func Clean(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextPolicy().Sanitize(trimmed))
}

func richTextPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("p", "span", "div", "pre", "code", "blockquote")
		p.AllowAttrs("style").OnElements("p", "span")
		p.AllowStyles("text-align", "text-decoration").Globally()
		policy = p
	})
	return policy
}
