// Package item describes a single inventory row as read from the source CSV.
package item

import (
	"strings"
)

// Field names as they appear in the source header row.
const (
	ID                    = "Item ID"
	Name                  = "Item Name"
	Category              = "Category"
	Batch                 = "Batch/GRIS No."
	Brand                 = "Brand"
	Supplier              = "Supplier"
	ExpiryDate            = "Item Expiry Date"
	Stock                 = "Stock Available"
	PurchasedDate         = "Purchased Date"
	Invoice               = "Invoice"
	HalalCertificate      = "Halal Certificate"
	HalalCertificateURL   = "Halal Certificate URL"
	CertificateExpiryDate = "Certificate Expiry Date"
)

// NotAvailable is the sentinel used by the sheet for "no value" in date columns.
const NotAvailable = "NA"

// Record is one row of the source data keyed by header name. Missing keys
// read as the empty string.
type Record map[string]string

// Get returns the value for field, or "" when absent.
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// IsLink reports whether s can be rendered as a clickable link.
func IsLink(s string) bool {
	return strings.HasPrefix(s, "http")
}

// Normalize returns a copy of r where a missing Halal Certificate URL is
// filled from a Halal Certificate value that looks like a link. r is left
// untouched.
func Normalize(r Record) Record {
	n := r.Clone()
	if n.Get(HalalCertificateURL) == "" && IsLink(n.Get(HalalCertificate)) {
		n[HalalCertificateURL] = n.Get(HalalCertificate)
	}
	return n
}

// CertificateURL resolves the certificate link of r, or "" when neither the
// dedicated column nor the fallback holds a link.
func CertificateURL(r Record) string {
	if u := Normalize(r).Get(HalalCertificateURL); IsLink(u) {
		return u
	}
	if u := r.Get(HalalCertificate); IsLink(u) {
		return u
	}
	return ""
}

// FileName is the deterministic page name for an item ID. Runes outside
// [A-Za-z0-9._-] are replaced so the name never escapes the output directory.
func FileName(id string) string {
	var b strings.Builder
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return "item_" + b.String() + ".html"
}
