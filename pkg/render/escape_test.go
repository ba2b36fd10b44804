package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"plain":            "plain",
		`<b>&"'</b>`:       "&lt;b&gt;&amp;&quot;&#039;&lt;/b&gt;",
		"&lt;":             "&amp;lt;",
		"Salt & Pepper":    "Salt &amp; Pepper",
		`O'Neil "Premium"`: "O&#039;Neil &quot;Premium&quot;",
	}
	for in, want := range tests {
		assert.Equal(t, want, Escape(in), "Escape(%q)", in)
	}
}
