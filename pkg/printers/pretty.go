package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ihic/pkg/expiry"
	"tableflip.dev/ihic/pkg/runner/generate"
)

// PrettyPrint writes run summaries for a terminal.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Pages lists every generated page, not just the totals.
	Pages bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Summary prints the outcome of one generation run.
func (pp *PrettyPrint) Summary(s *generate.Summary) {
	if s == nil {
		return
	}
	w := pp.out()
	faint := color.New(color.Faint)

	pp.Title("Build completed")
	_, _ = faint.Fprintf(w, "%s -> %s (%s)\n", s.Source, s.Output, s.Checksum)

	expired, warned := 0, 0
	for _, p := range s.Pages {
		if p.Item.Alert {
			if p.Item.FullyExpired {
				expired++
			} else {
				warned++
			}
		}
		if p.CertificateAvailable && p.Certificate.Alert {
			if p.Certificate.FullyExpired {
				expired++
			} else {
				warned++
			}
		}
	}

	switch n := len(s.Pages); n {
	case 1:
		_, _ = fmt.Fprintln(w, "1 page")
	default:
		_, _ = fmt.Fprintf(w, "%d pages\n", n)
	}
	if expired > 0 {
		_, _ = color.New(color.FgRed).Fprintf(w, "%d expired\n", expired)
	}
	if warned > 0 {
		_, _ = color.New(color.FgYellow).Fprintf(w, "%d nearly expired\n", warned)
	}
	if s.LandingCopied {
		_, _ = faint.Fprintln(w, "landing page copied")
	}

	if pp.Pages && len(s.Pages) > 0 {
		_, _ = fmt.Fprintln(w, "")
		pp.Table(s.Pages...)
	}
}

// Table prints one row per generated page.
func (pp *PrettyPrint) Table(pages ...generate.Page) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Item"), bold.Sprint("Certificate"), bold.Sprint("File"))
	for _, p := range pages {
		cert := color.New(color.Faint).Sprint("none")
		if p.CertificateAvailable {
			cert = status(p.Certificate)
		}
		tbl.AddRow(p.ID, p.Name, status(p.Item), cert, p.File)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func status(s expiry.Status) string {
	text := s.Text
	if text == "" {
		text = "N/A"
	}
	switch {
	case s.Class == expiry.ClassNotApplicable:
		return color.New(color.Faint).Sprint(text)
	case s.FullyExpired:
		return color.New(color.FgRed).Sprint(text)
	case s.Alert:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgGreen).Sprint(text)
	}
}
