package render

import "strings"

// escaper works in a single pass, so the entities it emits are never escaped
// again.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape makes s safe to embed in HTML text and quoted attribute values.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return escaper.Replace(s)
}
