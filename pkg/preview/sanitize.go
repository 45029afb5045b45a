package preview

import (
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

// sanitizeRichText strips everything a rich-text editor should not be able to
// inject into the preview (scripts, handlers, iframes) while keeping basic
// formatting.
func sanitizeRichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("style").OnElements("span", "p")
		policy.AllowStyles("text-decoration", "text-align").OnElements("span", "p")
		policy.RequireNoFollowOnLinks(true)
		richTextPolicy = policy
	})
	return richTextPolicy
}

// cleanImageSource accepts http(s) URLs and inline data:image payloads.
func cleanImageSource(raw string) (string, bool) {
	src := strings.TrimSpace(raw)
	if src == "" {
		return "", false
	}
	if strings.HasPrefix(strings.ToLower(src), "data:image/") {
		return src, true
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.String(), true
	default:
		return "", false
	}
}
