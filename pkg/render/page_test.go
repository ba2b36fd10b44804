package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/ihic/pkg/item"
)

const contact = "pic@example.com"

var today = time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)

func render(t *testing.T, rec item.Record) string {
	t.Helper()
	out, err := Page(rec, contact, today)
	require.NoError(t, err)
	return out
}

func TestPageExpiredItemWithoutCertificate(t *testing.T) {
	out := render(t, item.Record{
		item.ID:                    "7",
		item.Name:                  "Cocoa Powder",
		item.ExpiryDate:            "01/01/2020",
		item.CertificateExpiryDate: "NA",
		item.HalalCertificate:      "",
		item.HalalCertificateURL:   "",
	})

	assert.Contains(t, out, "(Expired)")
	assert.Contains(t, out, `href="mailto:`+contact+`?subject=`)
	assert.Contains(t, out, "Item Expired. Contact PIC")
	assert.Contains(t, out, `<div class="detail-value cert-not-available">Not Available</div>`)
	assert.NotContains(t, out, "certExpiryDate")
	assert.NotContains(t, out, "Certificate Expiry:")
	assert.NotContains(t, out, "View Certificate")
}

func TestPageValidItemWithCertificate(t *testing.T) {
	out := render(t, item.Record{
		item.ID:                    "12",
		item.Name:                  "Dates",
		item.ExpiryDate:            "01/12/2024",
		item.HalalCertificate:      "https://cert.example/12.pdf",
		item.CertificateExpiryDate: "10/06/2024",
		item.Invoice:               "https://invoice.example/12",
		item.PurchasedDate:         "15/01/2024",
	})

	assert.Contains(t, out, `class="detail-value valid" id="itemExpiryDate"`)
	assert.Contains(t, out, "01/12/2024 (Expires in 183 days)")
	assert.NotContains(t, out, "Item Expired. Contact PIC")

	assert.Contains(t, out, `<div class="detail-value cert-available">Available</div>`)
	assert.Contains(t, out, `class="detail-value expired" id="certExpiryDate"`)
	assert.Contains(t, out, "10/06/2024 (Expires in 9 days)")
	assert.Contains(t, out, "Certificate Nearly Expired. Contact PIC")
	assert.Contains(t, out, `<a href="https://cert.example/12.pdf" class="btn btn-blue">View Certificate</a>`)
	assert.Contains(t, out, `<a href="https://invoice.example/12" class="btn btn-blue">View Invoice</a>`)
	assert.Contains(t, out, "15/01/2024")
}

func TestPageNearlyExpiredBoundary(t *testing.T) {
	in14 := render(t, item.Record{item.ExpiryDate: "15/06/2024"})
	assert.Contains(t, in14, "(Expires in 14 days)")
	assert.Contains(t, in14, "Nearly Expired. Contact PIC")

	in15 := render(t, item.Record{item.ExpiryDate: "16/06/2024"})
	assert.Contains(t, in15, "(Expires in 15 days)")
	assert.NotContains(t, in15, `class="btn btn-red"`)
}

func TestPageFarFutureExpiry(t *testing.T) {
	out := render(t, item.Record{item.ExpiryDate: "01/06/2524"})
	assert.Contains(t, out, "01/06/2524 (Expires in 182621 days)")
	assert.Contains(t, out, `class="detail-value valid" id="itemExpiryDate"`)
}

func TestPageEscapesUserText(t *testing.T) {
	out := render(t, item.Record{
		item.Name:     `<script>alert('x')</script>`,
		item.Supplier: `Smith & "Sons"`,
	})

	assert.NotContains(t, out, "<script>alert(")
	assert.Contains(t, out, "&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;")
	assert.Contains(t, out, "Smith &amp; &quot;Sons&quot;")
}

func TestPageRejectsNonLinkURLs(t *testing.T) {
	out := render(t, item.Record{
		item.Invoice:             "INV-2024-01",
		item.HalalCertificateURL: "pending",
	})

	assert.Contains(t, out, `<span class="na-value">Not Available</span>`)
	assert.NotContains(t, out, "View Invoice")
	assert.NotContains(t, out, "View Certificate")
	assert.Contains(t, out, "cert-not-available")
}

func TestPageMissingFieldsRenderEmpty(t *testing.T) {
	out := render(t, item.Record{})

	assert.Contains(t, out, "<title>i-HIC -  Details</title>")
	assert.Contains(t, out, `class="detail-value na-value" id="itemExpiryDate"`)
	assert.Contains(t, out, "N/A")
	assert.NotContains(t, out, "data-expiry=")
}

func TestPageInvalidDateIsTolerated(t *testing.T) {
	out := render(t, item.Record{item.ExpiryDate: "next <year>"})

	assert.Contains(t, out, "next &lt;year&gt;")
	assert.Contains(t, out, `class="detail-value na-value" id="itemExpiryDate"`)
	assert.NotContains(t, out, `class="btn btn-red"`)
}

func TestPageAlertLinkUsesRawNameEncoded(t *testing.T) {
	out := render(t, item.Record{
		item.Name:       "Salt & Pepper",
		item.Batch:      "G/7",
		item.ExpiryDate: "01/06/2024",
	})

	assert.Contains(t, out, "Salt%20%26%20Pepper")
	assert.Contains(t, out, "G%2F7")
	assert.Contains(t, out, "?subject=High%20Importance%20%3A%20Salt%20%26%20Pepper%20is%20Expired&amp;body=")
}

func TestPageScriptSharesThresholds(t *testing.T) {
	out := render(t, item.Record{})

	assert.Contains(t, out, "var EXPIRED_BELOW = 1;")
	assert.Contains(t, out, "var WARN_BELOW = 15;")
	assert.Equal(t, 1, strings.Count(out, "<script>"))
}

func TestPageCarriesItemDataForScript(t *testing.T) {
	out := render(t, item.Record{
		item.ID:         "A1",
		item.Name:       "Milk",
		item.Batch:      "B9",
		item.ExpiryDate: "20/07/2024",
	})

	assert.Contains(t, out, `data-name="Milk" data-id="A1" data-batch="B9" data-contact="pic@example.com"`)
	assert.Contains(t, out, `data-expiry="20/07/2024"`)
	assert.Contains(t, out, `data-context="item"`)
}

func TestRendererUsesInjectedClock(t *testing.T) {
	r := &Renderer{
		Contact: contact,
		Today:   func() time.Time { return time.Date(2019, time.December, 1, 0, 0, 0, 0, time.Local) },
	}
	out, err := r.Render(item.Record{item.ExpiryDate: "01/01/2020"})
	require.NoError(t, err)
	assert.Contains(t, out, "(Expires in 31 days)")
}
