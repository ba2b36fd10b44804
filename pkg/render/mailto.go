package render

import (
	"fmt"
	"net/url"
	"strings"

	"tableflip.dev/ihic/pkg/expiry"
)

// Mailto builds a mail compose link with percent-encoded subject and body.
func Mailto(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// encodeComponent matches encodeURIComponent closely enough for mail
// clients: spaces must be %20, not +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func wording(s expiry.Status) (state, phrase string) {
	if s.FullyExpired {
		return "Expired", "already expired"
	}
	return "Nearly Expired", "nearly expired"
}

// ItemAlert is the mail link offered when an item is expired or close to it.
func ItemAlert(contact, name, batch string, s expiry.Status) string {
	state, phrase := wording(s)
	return Mailto(contact,
		fmt.Sprintf("High Importance : %s is %s", name, state),
		fmt.Sprintf("Hi. The %s with Identification Number of %s is %s. Please do the necessary. Thank you.", name, batch, phrase),
	)
}

// CertificateAlert is the mail link offered when a halal certificate is
// expired or close to it.
func CertificateAlert(contact, name string, s expiry.Status) string {
	state, phrase := wording(s)
	return Mailto(contact,
		fmt.Sprintf("High Importance : %s Halal Certificate is %s", name, state),
		fmt.Sprintf("Hi. The %s Halal certificate is %s. Please do the necessary. Thank you.", name, phrase),
	)
}
