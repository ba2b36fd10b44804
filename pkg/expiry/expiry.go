// Package expiry classifies how close an item or certificate is to expiring.
package expiry

import (
	"fmt"
	"time"

	"tableflip.dev/ihic/pkg/dateutil"
)

// Thresholds in days remaining. The embedded page script receives these same
// values, so both copies of the rule stay in step.
const (
	// ExpiredBelow: fewer days remaining than this counts as expired.
	ExpiredBelow = 1
	// WarnBelow: fewer days remaining than this raises a nearly expired alert.
	WarnBelow = 15
)

// Class is the display class of an expiry line. Values double as CSS classes.
type Class string

const (
	ClassValid         Class = "valid"
	ClassExpired       Class = "expired"
	ClassNotApplicable Class = "na-value"
)

// Status is the derived expiry state of one date.
type Status struct {
	Class Class
	Text  string
	// Alert is set when the page should offer a "contact PIC" link.
	Alert        bool
	AlertMessage string
	FullyExpired bool
	// DaysRemaining is only meaningful when Class is not ClassNotApplicable.
	DaysRemaining int
}

// Classify computes the Status of an expiry date relative to today. A nil
// date is not applicable. isCertificate selects the certificate wording of
// the alert message.
func Classify(expiry *time.Time, isCertificate bool, today time.Time) Status {
	if expiry == nil {
		return Status{Class: ClassNotApplicable}
	}

	days := dateutil.DaysBetween(today, *expiry)
	switch {
	case days < ExpiredBelow:
		msg := "Item Expired. Contact PIC"
		if isCertificate {
			msg = "Certificate Expired. Contact PIC"
		}
		return Status{
			Class:         ClassExpired,
			Text:          "(Expired)",
			Alert:         true,
			AlertMessage:  msg,
			FullyExpired:  true,
			DaysRemaining: days,
		}
	case days < WarnBelow:
		msg := "Nearly Expired. Contact PIC"
		if isCertificate {
			msg = "Certificate Nearly Expired. Contact PIC"
		}
		return Status{
			Class:         ClassExpired,
			Text:          fmt.Sprintf("(Expires in %d days)", days),
			Alert:         true,
			AlertMessage:  msg,
			DaysRemaining: days,
		}
	}
	return Status{
		Class:         ClassValid,
		Text:          fmt.Sprintf("(Expires in %d days)", days),
		DaysRemaining: days,
	}
}
