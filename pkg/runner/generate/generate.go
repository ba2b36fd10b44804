// Package generate runs one full build of the item pages.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/ihic/pkg/config"
	"tableflip.dev/ihic/pkg/dateutil"
	"tableflip.dev/ihic/pkg/expiry"
	"tableflip.dev/ihic/pkg/item"
	"tableflip.dev/ihic/pkg/logging"
	"tableflip.dev/ihic/pkg/render"
	"tableflip.dev/ihic/pkg/source"
	"tableflip.dev/ihic/pkg/store"
)

// ErrSourceMissing is returned when the configured CSV does not exist.
var ErrSourceMissing = errors.New("generate: missing CSV file")

// Generate reads the source sheet and writes one page per item, the
// manifest and the landing page.
type Generate struct {
	Config config.Config
	Logger *zap.Logger
	// Clock supplies "today" for expiry math and the manifest timestamp.
	Clock func() time.Time
	// Persistence overrides the diskv store rooted at Config.Output.
	Persistence store.Persistence
}

// Page describes one generated item page.
type Page struct {
	ID                   string
	Name                 string
	File                 string
	Item                 expiry.Status
	CertificateAvailable bool
	Certificate          expiry.Status
}

// Summary is the outcome of a successful run.
type Summary struct {
	Run           string
	Source        string
	Checksum      string
	Output        string
	Today         time.Time
	Pages         []Page
	Manifest      store.Manifest
	LandingCopied bool
}

// Do performs the build. Nothing is written when the source is missing or
// cannot be read.
func (g *Generate) Do(ctx context.Context) (*Summary, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	now := time.Now
	if g.Clock != nil {
		now = g.Clock
	}
	today := now()
	run := uuid.NewString()
	log := logging.OrNop(g.Logger).With(zap.String("run", run))
	log.Info("Starting build process", zap.String("source", g.Config.Source))

	src := g.Config.Source
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			abs, _ := filepath.Abs(src)
			log.Error("Missing CSV file", zap.String("path", abs))
			return nil, fmt.Errorf("%w at %s", ErrSourceMissing, abs)
		}
		return nil, fmt.Errorf("generate: stat %s: %w", src, err)
	}

	sum, err := store.Checksum(src)
	if err != nil {
		return nil, err
	}

	raw, err := source.ReadFile(ctx, src)
	if err != nil {
		return nil, err
	}
	records := make([]item.Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, item.Normalize(r))
	}
	log.Info("Processed items from CSV", zap.Int("items", len(records)), zap.String("checksum", sum))

	p := g.Persistence
	if p == nil {
		if p, err = store.Load(g.Config); err != nil {
			return nil, err
		}
	}
	if err := p.EnsureBase(); err != nil {
		return nil, err
	}

	renderer := &render.Renderer{
		Contact: g.Config.Contact,
		Today:   func() time.Time { return today },
	}

	summary := &Summary{
		Run:      run,
		Source:   src,
		Checksum: sum,
		Output:   p.BasePath(),
		Today:    today,
		Pages:    make([]Page, 0, len(records)),
	}
	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id := rec.Get(item.ID)
		name := item.FileName(id)
		if _, dup := seen[name]; dup {
			log.Warn("Duplicate item ID, page will be overwritten", zap.String("id", id), zap.String("file", name))
		}
		seen[name] = struct{}{}

		html, err := renderer.Render(rec)
		if err != nil {
			return nil, fmt.Errorf("generate: render item %q: %w", id, err)
		}
		if err := p.WritePage(name, html); err != nil {
			return nil, err
		}
		log.Debug("Generated", zap.String("file", filepath.Join(p.BasePath(), name)))

		ids = append(ids, id)
		summary.Pages = append(summary.Pages, describe(rec, name, today))
	}

	summary.Manifest = store.NewManifest(now(), ids)
	if err := p.WriteManifest(summary.Manifest); err != nil {
		return nil, err
	}

	if g.Config.Landing != "" {
		copied, err := p.CopyFile(g.Config.Landing)
		switch {
		case err != nil:
			log.Warn("Could not copy landing page", zap.String("path", g.Config.Landing), zap.Error(err))
		case copied:
			log.Info("Copied landing page to output directory", zap.String("path", g.Config.Landing))
		}
		summary.LandingCopied = copied
	}

	log.Info("Build completed successfully", zap.Int("pages", len(summary.Pages)), zap.String("output", summary.Output))
	return summary, nil
}

func describe(rec item.Record, file string, today time.Time) Page {
	itemDate, _ := dateutil.Parse(rec.Get(item.ExpiryDate))
	pg := Page{
		ID:   rec.Get(item.ID),
		Name: rec.Get(item.Name),
		File: file,
		Item: expiry.Classify(itemDate, false, today),
	}
	if item.CertificateURL(rec) != "" {
		certDate, _ := dateutil.Parse(rec.Get(item.CertificateExpiryDate))
		pg.CertificateAvailable = true
		pg.Certificate = expiry.Classify(certDate, true, today)
	}
	return pg
}
