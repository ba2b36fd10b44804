// Package render turns an item record into a self-contained HTML detail page.
package render

import (
	"errors"
	"strings"
	"text/template"
	"time"

	"tableflip.dev/ihic/pkg/dateutil"
	"tableflip.dev/ihic/pkg/expiry"
	"tableflip.dev/ihic/pkg/item"
)

// Renderer renders item pages. Today is consulted once per page; nil means
// time.Now.
type Renderer struct {
	Contact string
	Today   func() time.Time
}

// Render produces the HTML document for rec.
func (r *Renderer) Render(rec item.Record) (string, error) {
	now := time.Now
	if r.Today != nil {
		now = r.Today
	}
	return Page(rec, r.Contact, now())
}

// expiryLine is one date row plus its optional alert link. All string fields
// are already escaped for HTML.
type expiryLine struct {
	ElementID string
	AlertID   string
	Context   string
	Raw       string
	Display   string
	Class     expiry.Class
	AlertHref string
	AlertText string
}

type page struct {
	Name     string
	ID       string
	Batch    string
	Category string
	Brand    string
	Supplier string
	Stock    string
	Contact  string

	Expiry    expiryLine
	Purchased string
	Invoice   string

	Certificate       string
	CertificateExpiry expiryLine

	ExpiredBelow int
	WarnBelow    int
}

// Page renders rec as of today, addressing alerts to contact.
func Page(rec item.Record, contact string, today time.Time) (string, error) {
	rec = item.Normalize(rec)
	name := rec.Get(item.Name)
	batch := rec.Get(item.Batch)

	p := page{
		Name:         Escape(name),
		ID:           Escape(rec.Get(item.ID)),
		Batch:        Escape(batch),
		Category:     Escape(rec.Get(item.Category)),
		Brand:        Escape(rec.Get(item.Brand)),
		Supplier:     Escape(rec.Get(item.Supplier)),
		Stock:        Escape(rec.Get(item.Stock)),
		Contact:      Escape(contact),
		Purchased:    displayDate(rec.Get(item.PurchasedDate)),
		ExpiredBelow: expiry.ExpiredBelow,
		WarnBelow:    expiry.WarnBelow,
	}
	if inv := rec.Get(item.Invoice); item.IsLink(inv) {
		p.Invoice = Escape(inv)
	}

	p.Expiry = line(rec.Get(item.ExpiryDate), false, today, func(s expiry.Status) string {
		return ItemAlert(contact, name, batch, s)
	})
	p.Expiry.ElementID, p.Expiry.AlertID = "itemExpiryDate", "expiryAlertContainer"

	if cert := item.CertificateURL(rec); cert != "" {
		p.Certificate = Escape(cert)
		p.CertificateExpiry = line(rec.Get(item.CertificateExpiryDate), true, today, func(s expiry.Status) string {
			return CertificateAlert(contact, name, s)
		})
		p.CertificateExpiry.ElementID, p.CertificateExpiry.AlertID = "certExpiryDate", "certAlertContainer"
	}

	var b strings.Builder
	if err := pageTemplate.Execute(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}

func line(raw string, isCertificate bool, today time.Time, alert func(expiry.Status) string) expiryLine {
	l := expiryLine{Context: "item", Class: expiry.ClassNotApplicable}
	if isCertificate {
		l.Context = "certificate"
	}

	t, err := dateutil.Parse(raw)
	switch {
	case errors.Is(err, dateutil.ErrInvalidDate):
		l.Display = Escape(raw)
		return l
	case t == nil:
		l.Display = dateutil.Missing
		return l
	}

	s := expiry.Classify(t, isCertificate, today)
	l.Raw = Escape(raw)
	l.Class = s.Class
	l.Display = dateutil.Format(t) + " " + s.Text
	if s.Alert {
		l.AlertHref = Escape(alert(s))
		l.AlertText = Escape(s.AlertMessage)
	}
	return l
}

// displayDate renders a date cell that carries no expiry semantics.
func displayDate(raw string) string {
	t, err := dateutil.Parse(raw)
	if err != nil {
		return Escape(raw)
	}
	return dateutil.Format(t)
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))
