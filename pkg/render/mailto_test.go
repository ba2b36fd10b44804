package render

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/ihic/pkg/expiry"
)

func TestMailtoEncodesSpacesAsPercent20(t *testing.T) {
	got := Mailto("pic@example.com", "a b+c", "x&y=z")
	assert.Equal(t, "mailto:pic@example.com?subject=a%20b%2Bc&body=x%26y%3Dz", got)
}

func TestItemAlertWording(t *testing.T) {
	expired := ItemAlert("pic@example.com", "Cocoa Powder", "B-1", expiry.Status{FullyExpired: true})
	u, err := url.Parse(expired)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "pic@example.com", u.Opaque)

	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "High Importance : Cocoa Powder is Expired", q.Get("subject"))
	assert.Equal(t, "Hi. The Cocoa Powder with Identification Number of B-1 is already expired. Please do the necessary. Thank you.", q.Get("body"))

	nearly := ItemAlert("pic@example.com", "Cocoa Powder", "B-1", expiry.Status{})
	assert.True(t, strings.Contains(nearly, "is%20Nearly%20Expired"))
	assert.True(t, strings.Contains(nearly, "nearly%20expired"))
}

func TestCertificateAlertWording(t *testing.T) {
	got := CertificateAlert("pic@example.com", "Tea & Co", expiry.Status{FullyExpired: true})
	u, err := url.Parse(got)
	require.NoError(t, err)
	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "High Importance : Tea & Co Halal Certificate is Expired", q.Get("subject"))
	assert.Equal(t, "Hi. The Tea & Co Halal certificate is already expired. Please do the necessary. Thank you.", q.Get("body"))
}
